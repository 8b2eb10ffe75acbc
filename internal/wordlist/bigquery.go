package wordlist

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigquery"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/iterator"
)

// BigQuerySource reads words from a table with word_key and scope columns.
type BigQuerySource struct {
	ProjectID string
	Table     string // fully qualified, e.g. "project.dataset.words"
	Scope     string
	Location  string
}

// Words runs the query and returns the normalized word list.
func (s *BigQuerySource) Words(ctx context.Context) ([]string, error) {
	client, err := bigquery.NewClient(ctx, s.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("bigquery.NewClient: %w", err)
	}
	defer client.Close()

	q := client.Query(fmt.Sprintf("SELECT word_key FROM `%s` WHERE scope = %q", s.Table, s.Scope))
	if s.Location != "" {
		q.Location = s.Location
	}

	job, err := q.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.Run: %w", err)
	}
	status, err := job.Wait(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Wait: %w", err)
	}
	if err := status.Err(); err != nil {
		return nil, fmt.Errorf("status.Err: %w", err)
	}
	it, err := job.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("job.Read: %w", err)
	}

	var words []string
	for {
		var row []bigquery.Value
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("it.Next: %w", err)
		}

		word, ok := row[0].(string)
		if !ok {
			return nil, fmt.Errorf("row[0] is not a string: %v", row[0])
		}
		words = append(words, word)
	}

	log.WithFields(log.Fields{
		"table": s.Table,
		"scope": s.Scope,
		"words": len(words),
	}).Info("loaded words from BigQuery")
	return Normalize(words), nil
}
