package content

import "embed"

//go:embed catalog.yaml catalog.schema.json legal/*.md
var embedded embed.FS

const (
	catalogFile = "catalog.yaml"
	schemaFile  = "catalog.schema.json"
	legalDir    = "legal"
)
