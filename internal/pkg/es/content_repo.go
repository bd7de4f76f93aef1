package es

import (
	"context"
	"errors"
	log "log/slog"
	"strconv"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/goccy/go-json"
)

type ContentRepo interface {
	IndexContent(ctx context.Context, content *ContentES) error
	DeleteContent(ctx context.Context, id uint64) error
	SearchContent(ctx context.Context, queryText string, from, size int) ([]*ContentES, error)
}

type ContentRepoImpl struct {
	client *elasticsearch.TypedClient
}

func NewContentRepo(client *elasticsearch.TypedClient) ContentRepo {
	return &ContentRepoImpl{client: client}
}

// IndexContent 写入或覆盖一篇科普内容文档
func (s *ContentRepoImpl) IndexContent(ctx context.Context, content *ContentES) error {
	docID := strconv.FormatUint(content.ID, 10)

	_, err := s.client.Index(ContentIndex).
		Id(docID).
		Document(content).
		Do(ctx)

	return err
}

// DeleteContent 删除文档，文档不存在视为成功
func (s *ContentRepoImpl) DeleteContent(ctx context.Context, id uint64) error {
	docID := strconv.FormatUint(id, 10)
	_, err := s.client.Delete(ContentIndex, docID).Do(ctx)
	if err != nil {
		var e *types.ElasticsearchError
		if errors.As(err, &e) {
			if e.Status == NotFoundCode {
				log.Warn("Content already deleted or not found in ES", "id", id)
				return nil
			}
		}
		return err
	}
	return nil
}

// SearchContent 标题/描述多字段检索
func (s *ContentRepoImpl) SearchContent(ctx context.Context, queryText string, from, size int) ([]*ContentES, error) {
	if queryText == "" {
		return []*ContentES{}, nil
	}

	query := &types.Query{
		MultiMatch: &types.MultiMatchQuery{
			Query:  queryText,
			Fields: []string{"title^3", "description"},
		},
	}

	resp, err := s.client.Search().Index(ContentIndex).
		Query(query).
		From(from).
		Size(size).
		Do(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]*ContentES, 0, len(resp.Hits.Hits))
	for _, hit := range resp.Hits.Hits {
		if hit.Source_ == nil {
			continue
		}
		var content ContentES
		if err = json.Unmarshal(hit.Source_, &content); err != nil {
			continue
		}
		results = append(results, &content)
	}
	return results, nil
}
