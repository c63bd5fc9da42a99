package schema

import (
	"context"
	"fmt"

	"github.com/twmb/franz-go/pkg/sr"
)

// A SchemaIdentifier resolves an avro schema text to its registry id.
type SchemaIdentifier interface {
	DetermineID(ctx context.Context, subject, avroSchemaText string) (int, error)
}

var _ SchemaIdentifier = (*SchemaCreater)(nil)

// SchemaCreater registers the schema under the subject on first use and
// returns the id the registry assigned. Re-registering an identical
// schema is idempotent on the registry side.
type SchemaCreater struct {
	client *sr.Client
}

func NewSchemaCreater(client *sr.Client) *SchemaCreater {
	return &SchemaCreater{client: client}
}

func (c *SchemaCreater) DetermineID(
	ctx context.Context, subject, avroSchemaText string,
) (int, error) {
	const op = "SchemaCreater.DetermineID"

	ss, err := c.client.CreateSchema(ctx, subject, sr.Schema{
		Type:   sr.TypeAvro,
		Schema: avroSchemaText,
	})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return ss.ID, nil
}
