package model

import "github.com/uptrace/bun"

// Property is a key-value row for editorial knobs that change without a
// deploy, e.g. the recall district list or ingest reject rules.
type Property struct {
	bun.BaseModel `bun:"table:properties,alias:pt"`

	PropertyID int    `bun:",pk,autoincrement" json:"propertyId"`
	Key        string `bun:"key,notnull" json:"key"`
	Value      string `bun:"value,notnull" json:"value"`
}
