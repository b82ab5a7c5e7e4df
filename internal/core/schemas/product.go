package schemas

import "github.com/JonMunkholm/metagen/internal/core"

// ProductKey identifies the product listing export.
const ProductKey = "product"

func init() {
	core.Register(Product())
}

// Product describes exports with upper-case URL columns (MP4 URL,
// IMAGE URL, URL TO PRODUCT). It carries no Set attribute.
func Product() core.Schema {
	return core.Schema{
		Info: core.SchemaInfo{
			Key:          ProductKey,
			Label:        "Product listings",
			DefaultInput: "products.csv",
		},
		Bindings: []core.Binding{
			{Column: "TITLE", Slot: core.SlotTitle},
			{Column: "IMAGE URL", Slot: core.SlotImage},
			{Column: "MP4 URL", Slot: core.SlotVideo},
			{Column: "URL TO PRODUCT", Slot: core.SlotExternalURL},
			{Column: "GRADER", Slot: core.SlotAttribute, Trait: "Grader"},
			{Column: "SERIAL NUMBER", Slot: core.SlotAttribute, Trait: "Serial Number"},
			{Column: "GRADE", Slot: core.SlotAttribute, Trait: "Grade"},
			{Column: "YEAR", Slot: core.SlotAttribute, Trait: "Year"},
			{Column: "LANGUAGE", Slot: core.SlotAttribute, Trait: "Language"},
		},
	}
}
