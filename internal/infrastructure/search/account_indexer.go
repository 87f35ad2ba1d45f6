package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/registration-api/internal/application"
	"github.com/oksasatya/registration-api/internal/domain/entity"
)

type accountDoc struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	IsActivated bool      `json:"is_activated"`
	IndexedAt   time.Time `json:"indexed_at"`
}

// ESAccountIndexer mirrors accounts into Elasticsearch for lookups.
// Indexing is best effort; callers are expected to log and continue
// on error rather than fail the request.
type ESAccountIndexer struct {
	client *elasticsearch.Client
	index  string
}

func NewESAccountIndexer(client *elasticsearch.Client, index string) *ESAccountIndexer {
	return &ESAccountIndexer{client: client, index: index}
}

func (i *ESAccountIndexer) Index(ctx context.Context, account *entity.Account) error {
	doc := accountDoc{
		ID:          account.ID().String(),
		Email:       account.Email().String(),
		IsActivated: account.IsActivated(),
		IndexedAt:   time.Now().UTC(),
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req := esapi.IndexRequest{
		Index:      i.index,
		DocumentID: doc.ID,
		Body:       bytes.NewReader(body),
		Refresh:    "false",
	}
	res, err := req.Do(ctx, i.client)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index account %s: %s", doc.ID, res.Status())
	}
	return nil
}

var _ application.AccountIndexer = (*ESAccountIndexer)(nil)
