package handlers

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/silkway-travel/tour-booking-api/internal/models"
	"gorm.io/gorm"
)

// ContentHandler serves the read-only projections: FAQ, configurator params,
// articles and the gallery.
type ContentHandler struct {
	db *gorm.DB
}

func NewContentHandler(db *gorm.DB) *ContentHandler {
	return &ContentHandler{db: db}
}

type FAQInput struct {
	Lang string `path:"lang" doc:"Language code"`
	PageParams
}

type FAQOutput struct {
	Body []models.FAQ
}

func (h *ContentHandler) HandleFAQ(ctx context.Context, input *FAQInput) (*FAQOutput, error) {
	offset, limit := input.Limits()

	var items []models.FAQ
	err := h.db.Where("lang = ?", input.Lang).Offset(offset).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list FAQ: " + err.Error())
	}
	return &FAQOutput{Body: items}, nil
}

type ParamsInput struct {
	Lang string `path:"lang" doc:"Language code"`
}

// ParamsOutput carries the option lists the "build your own tour" form needs.
type ParamsOutput struct {
	Body struct {
		Categories     []models.Category `json:"categories"`
		CarTypes       []models.CarType  `json:"car_types"`
		Accommodations []string          `json:"accommodations"`
		Meals          []string          `json:"meals"`
		Methods        []string          `json:"methods"`
	}
}

func (h *ContentHandler) HandleParams(ctx context.Context, input *ParamsInput) (*ParamsOutput, error) {
	res := &ParamsOutput{}

	if err := h.db.Find(&res.Body.Categories).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list categories: " + err.Error())
	}
	if err := h.db.Find(&res.Body.CarTypes).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list car types: " + err.Error())
	}

	res.Body.Accommodations = []string{"Отель", "Юрта", "Гостиница", "Палата"}
	res.Body.Meals = []string{"Завтрак", "Обед", "Ужин", "Все включено"}
	res.Body.Methods = []string{"Ватсапп", "Звонки", "Инстаграмм", "Телеграмм"}

	return res, nil
}

type ArticleNavInput struct {
	Lang string `path:"lang" doc:"Language code"`
}

type ArticleNavOutput struct {
	Body []models.ArticleCategory
}

// HandleArticleNav lists the article categories for the blog navigation.
func (h *ContentHandler) HandleArticleNav(ctx context.Context, input *ArticleNavInput) (*ArticleNavOutput, error) {
	var categories []models.ArticleCategory
	if err := h.db.Where("lang = ?", input.Lang).Find(&categories).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list article categories: " + err.Error())
	}
	return &ArticleNavOutput{Body: categories}, nil
}

type ArticlesInput struct {
	Lang string `path:"lang" doc:"Language code"`
	PageParams
}

type ArticlesOutput struct {
	Body []models.Article
}

func (h *ContentHandler) HandleArticles(ctx context.Context, input *ArticlesInput) (*ArticlesOutput, error) {
	offset, limit := input.Limits()

	var articles []models.Article
	err := h.db.Where("lang = ?", input.Lang).Offset(offset).Limit(limit).Find(&articles).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list articles: " + err.Error())
	}
	return &ArticlesOutput{Body: articles}, nil
}

type ArticleListInput struct {
	CategoryID uint `path:"cat_id" doc:"Article category ID"`
	PageParams
}

type ArticleListOutput struct {
	Body []models.Article
}

func (h *ContentHandler) HandleArticleList(ctx context.Context, input *ArticleListInput) (*ArticleListOutput, error) {
	offset, limit := input.Limits()

	var articles []models.Article
	err := h.db.Where("category_id = ?", input.CategoryID).Offset(offset).Limit(limit).Find(&articles).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list articles: " + err.Error())
	}
	return &ArticleListOutput{Body: articles}, nil
}

type ArticleDetailInput struct {
	ID uint `path:"id" doc:"Article ID"`
}

type ArticleDetailOutput struct {
	Body models.Article
}

func (h *ContentHandler) HandleArticleDetail(ctx context.Context, input *ArticleDetailInput) (*ArticleDetailOutput, error) {
	var article models.Article
	if err := h.db.Preload("Category").First(&article, input.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Article not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load article: " + err.Error())
	}
	return &ArticleDetailOutput{Body: article}, nil
}

type GalleryListInput struct {
	Lang string `path:"lang" doc:"Language code"`
	PageParams
}

type GalleryListOutput struct {
	Body []models.Gallery
}

func (h *ContentHandler) HandleGalleryList(ctx context.Context, input *GalleryListInput) (*GalleryListOutput, error) {
	offset, limit := input.Limits()

	var items []models.Gallery
	err := h.db.Where("lang = ?", input.Lang).Offset(offset).Limit(limit).Find(&items).Error
	if err != nil {
		return nil, huma.Error500InternalServerError("Failed to list gallery: " + err.Error())
	}
	return &GalleryListOutput{Body: items}, nil
}

type SliderListInput struct{}

type SliderListOutput struct {
	Body []models.Slider
}

// HandleSliders lists the active main-page banners.
func (h *ContentHandler) HandleSliders(ctx context.Context, input *SliderListInput) (*SliderListOutput, error) {
	var sliders []models.Slider
	if err := h.db.Where("is_active = ?", true).Find(&sliders).Error; err != nil {
		return nil, huma.Error500InternalServerError("Failed to list sliders: " + err.Error())
	}
	return &SliderListOutput{Body: sliders}, nil
}

type GalleryDetailInput struct {
	GalleryID uint `path:"gallery_id" doc:"Gallery item ID"`
}

type GalleryDetailOutput struct {
	Body models.Gallery
}

func (h *ContentHandler) HandleGalleryDetail(ctx context.Context, input *GalleryDetailInput) (*GalleryDetailOutput, error) {
	var item models.Gallery
	if err := h.db.First(&item, input.GalleryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, huma.Error404NotFound("Gallery item not found")
		}
		return nil, huma.Error500InternalServerError("Failed to load gallery item: " + err.Error())
	}
	return &GalleryDetailOutput{Body: item}, nil
}
