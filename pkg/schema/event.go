package schema

const InteractionEventSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "interaction_event",
	"fields" : [
		{"name": "kind", "type": "string"},
		{"name": "product_id", "type": "string"},
		{"name": "product_name", "type": "string"},
		{"name": "category", "type": "string"},
		{"name": "likes", "type": "int"},
		{"name": "occurred_at", "type": "long"}
	]
}`

// InteractionEventV1 is the wire form of a storefront interaction.
// OccurredAt is unix milliseconds.
type InteractionEventV1 struct {
	Kind        string `avro:"kind"`
	ProductID   string `avro:"product_id"`
	ProductName string `avro:"product_name"`
	Category    string `avro:"category"`
	Likes       int    `avro:"likes"`
	OccurredAt  int64  `avro:"occurred_at"`
}
