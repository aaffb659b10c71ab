package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/Sameer447/ChefsQuest/internal/adapters/storage"
	"github.com/Sameer447/ChefsQuest/internal/app"
	"github.com/Sameer447/ChefsQuest/internal/domain/model"
	"github.com/Sameer447/ChefsQuest/pkg/logger"
)

func init() {
	_ = logger.Init()
	_ = logger.SetLevelString("error")
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	kv := storage.NewMemory()
	svc, err := app.New(app.WithKV(kv))
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	if _, err := svc.Start(context.Background()); err != nil {
		t.Fatalf("start service: %v", err)
	}

	mux := http.NewServeMux()
	NewServer(svc, 1<<20).Register(context.Background(), mux)
	ts := httptest.NewServer(mux)
	t.Cleanup(func() {
		ts.Close()
		_ = svc.Stop(context.Background())
		_ = kv.Close()
	})
	return ts
}

func postJSON(t *testing.T, url, body string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	defer resp.Body.Close()
	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func getJSON(t *testing.T, url string) (*http.Response, map[string]any) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	var decoded map[string]any
	_ = json.NewDecoder(resp.Body).Decode(&decoded)
	return resp, decoded
}

func TestPostLevelResult(t *testing.T) {
	Convey("Given a running API server", t, func() {
		ts := newTestServer(t)

		Convey("When a valid completed result is posted", func() {
			resp, body := postJSON(t, ts.URL+"/v1/levels/result",
				`{"resultId":"r-1","levelId":"pancakes","completed":true,"mistakes":0,"duration":40}`)

			Convey("Then the result is applied with three stars", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(body["status"], ShouldEqual, "applied")
				So(body["stars"], ShouldEqual, 3)
			})

			Convey("And posting the same result id again reports a duplicate", func() {
				resp2, body2 := postJSON(t, ts.URL+"/v1/levels/result",
					`{"resultId":"r-1","levelId":"pancakes","completed":true,"mistakes":0,"duration":40}`)
				So(resp2.StatusCode, ShouldEqual, http.StatusOK)
				So(body2["duplicate"], ShouldEqual, true)
			})
		})

		Convey("When the level id is unknown", func() {
			resp, body := postJSON(t, ts.URL+"/v1/levels/result",
				`{"levelId":"mystery_dish","completed":true}`)

			Convey("Then 404 with an error code is returned", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusNotFound)
				So(body["code"], ShouldEqual, "unknown_level")
			})
		})

		Convey("When the body is not JSON", func() {
			resp, body := postJSON(t, ts.URL+"/v1/levels/result", `not json`)

			Convey("Then 400 is returned", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				So(body["code"], ShouldEqual, "bad_request")
			})
		})
	})
}

func TestStateEndpoints(t *testing.T) {
	Convey("Given a running API server with one completed level", t, func() {
		ts := newTestServer(t)
		resp, _ := postJSON(t, ts.URL+"/v1/levels/result",
			`{"levelId":"pancakes","completed":true,"mistakes":1,"duration":50}`)
		So(resp.StatusCode, ShouldEqual, http.StatusOK)

		Convey("When stats are fetched", func() {
			resp, body := getJSON(t, ts.URL+"/v1/stats")

			Convey("Then the aggregate reflects the completion", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(body["totalGamesPlayed"], ShouldEqual, 1)
				So(body["totalStars"], ShouldEqual, 2)
			})
		})

		Convey("When progress is fetched", func() {
			resp, body := getJSON(t, ts.URL+"/v1/progress")

			Convey("Then the level shows as completed", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				level, ok := body["pancakes"].(map[string]any)
				So(ok, ShouldBeTrue)
				So(level["completed"], ShouldEqual, true)
				So(level["stars"], ShouldEqual, 2)
			})
		})

		Convey("When the session is fetched", func() {
			resp, body := getJSON(t, ts.URL+"/v1/session")

			Convey("Then it lists the played level", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(body["sessionId"], ShouldNotBeEmpty)
				played, ok := body["levelsPlayed"].([]any)
				So(ok, ShouldBeTrue)
				So(played, ShouldContain, "pancakes")
			})
		})

		Convey("When the health endpoint is probed", func() {
			resp, body := getJSON(t, ts.URL+"/healthz")
			So(resp.StatusCode, ShouldEqual, http.StatusOK)
			So(body["status"], ShouldEqual, "ok")
		})
	})
}

func TestSettingsEndpoint(t *testing.T) {
	Convey("Given a running API server", t, func() {
		ts := newTestServer(t)

		Convey("When settings are updated via PUT", func() {
			req, err := http.NewRequest(http.MethodPut, ts.URL+"/v1/settings",
				strings.NewReader(`{"soundEnabled":false,"difficulty":"hard","musicVolume":0.2}`))
			So(err, ShouldBeNil)
			resp, err := http.DefaultClient.Do(req)
			So(err, ShouldBeNil)
			resp.Body.Close()
			So(resp.StatusCode, ShouldEqual, http.StatusOK)

			Convey("Then a subsequent GET returns the new values", func() {
				resp, body := getJSON(t, ts.URL+"/v1/settings")
				So(resp.StatusCode, ShouldEqual, http.StatusOK)
				So(body["soundEnabled"], ShouldEqual, false)
				So(body["difficulty"], ShouldEqual, "hard")
			})
		})
	})
}

func TestDataEndpoints(t *testing.T) {
	Convey("Given a running API server with played data", t, func() {
		ts := newTestServer(t)
		resp, _ := postJSON(t, ts.URL+"/v1/levels/result",
			`{"levelId":"pancakes","completed":true,"duration":40}`)
		So(resp.StatusCode, ShouldEqual, http.StatusOK)

		Convey("When data is exported, reset, and re-imported", func() {
			resp, err := http.Get(ts.URL + "/v1/data/export")
			So(err, ShouldBeNil)
			var bundle model.ExportBundle
			So(json.NewDecoder(resp.Body).Decode(&bundle), ShouldBeNil)
			resp.Body.Close()
			So(bundle.Stats.TotalStars, ShouldEqual, 3)

			resetResp, resetBody := postJSON(t, ts.URL+"/v1/data/reset", ``)
			So(resetResp.StatusCode, ShouldEqual, http.StatusOK)
			So(resetBody["status"], ShouldEqual, "reset")

			_, stats := getJSON(t, ts.URL+"/v1/stats")
			So(stats["totalStars"], ShouldEqual, 0)

			raw, err := json.Marshal(bundle)
			So(err, ShouldBeNil)
			importResp, importBody := postJSON(t, ts.URL+"/v1/data/import", string(raw))
			So(importResp.StatusCode, ShouldEqual, http.StatusOK)
			So(importBody["status"], ShouldEqual, "imported")

			Convey("Then the records are restored", func() {
				_, stats := getJSON(t, ts.URL+"/v1/stats")
				So(stats["totalStars"], ShouldEqual, 3)
			})
		})

		Convey("When an invalid bundle is imported", func() {
			resp, body := postJSON(t, ts.URL+"/v1/data/import",
				`{"stats":{"totalStars":-5}}`)

			Convey("Then 400 with invalid_bundle is returned", func() {
				So(resp.StatusCode, ShouldEqual, http.StatusBadRequest)
				So(body["code"], ShouldEqual, "invalid_bundle")
			})
		})
	})
}
