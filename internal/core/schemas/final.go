package schemas

import "github.com/JonMunkholm/metagen/internal/core"

// FinalKey identifies the graded-card export with lowercase media columns.
const FinalKey = "final"

func init() {
	core.Register(Final())
}

// Final describes exports whose media columns are named video, image and
// external_url. It is the only variant with a Set attribute.
func Final() core.Schema {
	return core.Schema{
		Info: core.SchemaInfo{
			Key:          FinalKey,
			Label:        "Graded items with set",
			DefaultInput: "final.csv",
		},
		Bindings: []core.Binding{
			{Column: "TITLE", Slot: core.SlotTitle},
			{Column: "image", Slot: core.SlotImage},
			{Column: "video", Slot: core.SlotVideo},
			{Column: "external_url", Slot: core.SlotExternalURL},
			{Column: "GRADER", Slot: core.SlotAttribute, Trait: "Grader"},
			{Column: "SERIAL NUMBER", Slot: core.SlotAttribute, Trait: "Serial Number"},
			{Column: "GRADE", Slot: core.SlotAttribute, Trait: "Grade"},
			{Column: "YEAR", Slot: core.SlotAttribute, Trait: "Year"},
			{Column: "LANGUAGE", Slot: core.SlotAttribute, Trait: "Language"},
			{Column: "SET", Slot: core.SlotAttribute, Trait: "Set"},
		},
	}
}
