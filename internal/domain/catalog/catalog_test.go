package catalog_test

import (
	"testing"

	"github.com/Sameer447/ChefsQuest/internal/domain/catalog"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRecipeCatalog(t *testing.T) {
	Convey("Given the recipe catalog", t, func() {
		recipes := catalog.Recipes()

		Convey("Then every recipe should have an id, a name, and ingredients", func() {
			So(len(recipes), ShouldEqual, catalog.RecipeCount())
			for _, r := range recipes {
				So(r.ID, ShouldNotBeEmpty)
				So(r.Name, ShouldNotBeEmpty)
				So(len(r.Ingredients), ShouldBeGreaterThan, 0)
			}
		})

		Convey("Then recipe ids should be unique", func() {
			seen := map[string]bool{}
			for _, id := range catalog.RecipeIDs() {
				So(seen[id], ShouldBeFalse)
				seen[id] = true
			}
		})

		Convey("When looking up a known recipe", func() {
			r, ok := catalog.FindRecipe("pancakes")
			So(ok, ShouldBeTrue)
			So(r.Name, ShouldEqual, "Fluffy Pancakes")
		})

		Convey("When looking up an unknown recipe", func() {
			_, ok := catalog.FindRecipe("mystery_meat")
			So(ok, ShouldBeFalse)
		})

		Convey("Then mutating the returned slice should not touch the catalog", func() {
			recipes[0].ID = "mutated"
			again, ok := catalog.FindRecipe("pancakes")
			So(ok, ShouldBeTrue)
			So(again.ID, ShouldEqual, "pancakes")
		})
	})
}

func TestAchievementCatalog(t *testing.T) {
	Convey("Given the achievement catalog", t, func() {
		defs := catalog.Achievements()

		Convey("Then it should hold the eleven known milestones", func() {
			So(len(defs), ShouldEqual, 11)
			for _, d := range defs {
				So(d.ID, ShouldNotBeEmpty)
				So(d.Requirement, ShouldBeGreaterThan, 0)
				So(d.Icon, ShouldNotBeEmpty)
			}
		})

		Convey("Then the all-star badge should track the recipe count", func() {
			d, ok := catalog.FindAchievement(catalog.AchievementAllStar)
			So(ok, ShouldBeTrue)
			So(d.Requirement, ShouldEqual, catalog.RecipeCount())
		})

		Convey("When looking up an unknown achievement", func() {
			_, ok := catalog.FindAchievement("golden_spoon")
			So(ok, ShouldBeFalse)
		})
	})
}
