package service

import (
	"VaccineVault/internal/api/dto"
	"VaccineVault/internal/model"
	"VaccineVault/internal/pkg/es"
	"VaccineVault/internal/pkg/util"
	"VaccineVault/internal/repository"
	"context"
	log "log/slog"

	"github.com/jinzhu/copier"
)

type EducationService interface {
	Create(ctx context.Context, adminID uint64, createDTO *dto.CreateContentDTO) (*dto.ContentDTO, error)
	Update(ctx context.Context, adminID, contentID uint64, updateDTO *dto.UpdateContentDTO) error
	Delete(ctx context.Context, adminID, contentID uint64) error
	GetById(ctx context.Context, contentID uint64) (*dto.ContentDTO, error)
	List(ctx context.Context, page, size int) ([]*dto.ContentDTO, error)
	Search(ctx context.Context, query string, page, size int) ([]*dto.ContentDTO, error)
}

type EducationServiceImpl struct {
	eduRepo     repository.EducationRepo
	contentRepo es.ContentRepo
}

func NewEducationService(eduRepo repository.EducationRepo, contentRepo es.ContentRepo) EducationService {
	return &EducationServiceImpl{
		eduRepo:     eduRepo,
		contentRepo: contentRepo,
	}
}

func (s *EducationServiceImpl) Create(ctx context.Context, adminID uint64, createDTO *dto.CreateContentDTO) (*dto.ContentDTO, error) {
	content := &model.EducationalContent{
		Title:       createDTO.Title,
		Description: createDTO.Description,
		ContentType: createDTO.ContentType,
		URL:         createDTO.URL,
		AdminID:     adminID,
	}
	if err := s.eduRepo.Create(ctx, content); err != nil {
		return nil, err
	}

	// 索引失败不影响主流程，搜索结果最终一致
	if err := s.contentRepo.IndexContent(ctx, contentToES(content)); err != nil {
		log.WarnContext(ctx, "科普内容索引失败", "id", content.ID, "error", err)
	}

	return contentToDTO(content), nil
}

// Update 仅创建者本人可修改
func (s *EducationServiceImpl) Update(ctx context.Context, adminID, contentID uint64, updateDTO *dto.UpdateContentDTO) error {
	content, err := s.eduRepo.GetById(ctx, contentID)
	if err != nil {
		return err
	}
	if content == nil {
		return ErrContentNotFound
	}
	if content.AdminID != adminID {
		return ErrNotContentOwner
	}

	if err = copier.CopyWithOption(content, updateDTO, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}
	if err = s.eduRepo.Update(ctx, content); err != nil {
		return err
	}

	if err = s.contentRepo.IndexContent(ctx, contentToES(content)); err != nil {
		log.WarnContext(ctx, "科普内容重索引失败", "id", content.ID, "error", err)
	}
	return nil
}

func (s *EducationServiceImpl) Delete(ctx context.Context, adminID, contentID uint64) error {
	content, err := s.eduRepo.GetById(ctx, contentID)
	if err != nil {
		return err
	}
	if content == nil {
		return ErrContentNotFound
	}
	if content.AdminID != adminID {
		return ErrNotContentOwner
	}

	if err = s.eduRepo.Delete(ctx, contentID); err != nil {
		return err
	}
	if err = s.contentRepo.DeleteContent(ctx, contentID); err != nil {
		log.WarnContext(ctx, "科普内容索引删除失败", "id", contentID, "error", err)
	}
	return nil
}

func (s *EducationServiceImpl) GetById(ctx context.Context, contentID uint64) (*dto.ContentDTO, error) {
	content, err := s.eduRepo.GetById(ctx, contentID)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, ErrContentNotFound
	}
	return contentToDTO(content), nil
}

func (s *EducationServiceImpl) List(ctx context.Context, page, size int) ([]*dto.ContentDTO, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	contents, err := s.eduRepo.GetAll(ctx, (page-1)*size, size)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ContentDTO, 0, len(contents))
	for _, c := range contents {
		out = append(out, contentToDTO(c))
	}
	return out, nil
}

// Search 走 ES 的 multi_match，标题权重高于正文
func (s *EducationServiceImpl) Search(ctx context.Context, query string, page, size int) ([]*dto.ContentDTO, error) {
	if page < 1 {
		page = 1
	}
	if size < 1 || size > 100 {
		size = 20
	}
	hits, err := s.contentRepo.SearchContent(ctx, query, (page-1)*size, size)
	if err != nil {
		return nil, err
	}

	out := make([]*dto.ContentDTO, 0, len(hits))
	for _, hit := range hits {
		item := &dto.ContentDTO{
			ID:          hit.ID,
			Title:       hit.Title,
			Description: hit.Description,
			ContentType: hit.ContentType,
		}
		if hit.URL != "" {
			item.URL = util.PtrString(hit.URL)
		}
		out = append(out, item)
	}
	return out, nil
}

func contentToDTO(c *model.EducationalContent) *dto.ContentDTO {
	return &dto.ContentDTO{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		ContentType: c.ContentType,
		URL:         c.URL,
		CreatedAt:   &c.CreatedAt,
	}
}

func contentToES(c *model.EducationalContent) *es.ContentES {
	doc := &es.ContentES{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		ContentType: c.ContentType,
		AdminID:     c.AdminID,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
	if c.URL != nil {
		doc.URL = *c.URL
	}
	return doc
}
