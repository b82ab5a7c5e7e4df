package schemas

import (
	"testing"

	"github.com/JonMunkholm/metagen/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistered(t *testing.T) {
	assert.Equal(t, []string{FinalKey, ProductKey}, core.Keys())

	for _, s := range core.All() {
		assert.NoError(t, core.ValidateSchema(s), s.Info.Key)
		assert.NotEmpty(t, s.Info.DefaultInput, s.Info.Key)
	}
}

func TestFinal_Scenario(t *testing.T) {
	doc := core.Transform(Final(), core.RowRecord{Index: 1, Fields: map[string]string{
		"TITLE":  "Sword #1",
		"GRADER": "  PSA ",
		"GRADE":  "",
		"YEAR":   "2021",
		"image":  "http://x/1.png",
		"video":  "",
	}})

	assert.Equal(t, "Sword #1", doc.Name)
	assert.Equal(t, "Sword #1", doc.Description)
	assert.Equal(t, "http://x/1.png", doc.Image)
	assert.Nil(t, doc.Video)
	assert.Nil(t, doc.ExternalURL)
	assert.Equal(t, []core.Attribute{
		{TraitType: "Grader", Value: "PSA", DisplayType: "string"},
		{TraitType: "Year", Value: "2021", DisplayType: "string"},
	}, doc.Attributes)
}

func TestFinal_AttributeOrder(t *testing.T) {
	var traits []string
	for _, b := range Final().Attributes() {
		traits = append(traits, b.Trait)
	}
	assert.Equal(t, []string{"Grader", "Serial Number", "Grade", "Year", "Language", "Set"}, traits)
}

func TestProduct_Columns(t *testing.T) {
	s := Product()

	for slot, want := range map[core.Slot]string{
		core.SlotTitle:       "TITLE",
		core.SlotImage:       "IMAGE URL",
		core.SlotVideo:       "MP4 URL",
		core.SlotExternalURL: "URL TO PRODUCT",
	} {
		got, ok := s.Column(slot)
		require.True(t, ok, slot.String())
		assert.Equal(t, want, got)
	}

	var traits []string
	for _, b := range s.Attributes() {
		traits = append(traits, b.Trait)
	}
	assert.Equal(t, []string{"Grader", "Serial Number", "Grade", "Year", "Language"}, traits)
}

func TestProduct_Transform(t *testing.T) {
	doc := core.Transform(Product(), core.RowRecord{Index: 1, Fields: map[string]string{
		"TITLE":          "Card",
		"IMAGE URL":      " http://x/p.png ",
		"MP4 URL":        "http://v/p.mp4",
		"URL TO PRODUCT": "",
		"SERIAL NUMBER":  "55",
	}})

	assert.Equal(t, "http://x/p.png", doc.Image)
	require.NotNil(t, doc.Video)
	assert.Equal(t, "http://v/p.mp4", *doc.Video)
	assert.Nil(t, doc.ExternalURL)
	assert.Equal(t, []core.Attribute{{TraitType: "Serial Number", Value: "55", DisplayType: "string"}}, doc.Attributes)
}
