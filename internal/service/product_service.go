package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/palrajin0126/admin-panel/config"
	"github.com/palrajin0126/admin-panel/internal/domain"
	"github.com/palrajin0126/admin-panel/internal/dto"
	"github.com/palrajin0126/admin-panel/internal/repository"
	pkgdto "github.com/palrajin0126/admin-panel/pkg/dto"
	"github.com/palrajin0126/admin-panel/pkg/errs"
	"github.com/rs/zerolog/log"
)

// ProductServiceImpl keeps the relational product rows and their
// document-store copies in sync. The relational store is always mutated
// first; the document store is never touched after a failed relational
// write. There is no locking across the two phases, so two concurrent
// updates to the same product may interleave (last relational write wins,
// last document write wins, not necessarily from the same request).
type ProductServiceImpl struct {
	productRepo repository.ProductRepository
	catalogRepo repository.CatalogRepository
	config      config.Config
	publisher   EventPublisher
}

func CreateProductService(productRepo repository.ProductRepository, catalogRepo repository.CatalogRepository, config config.Config, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{productRepo: productRepo, catalogRepo: catalogRepo, config: config, publisher: publisher}
}

// coerceProduct turns the untyped form payload into a typed relational row.
// Parse failures reject the whole request before either store is touched.
func coerceProduct(data dto.ProductRequest) (res domain.Product, err error) {
	price, err := strconv.ParseFloat(data.Price, 64)
	if err != nil {
		return res, errs.ErrClient
	}

	marketPrice, err := strconv.ParseFloat(data.MarketPrice, 64)
	if err != nil {
		return res, errs.ErrClient
	}

	discount, err := strconv.ParseFloat(data.PercentageOfDiscountOffered, 64)
	if err != nil {
		return res, errs.ErrClient
	}

	stock, err := strconv.Atoi(data.Stock)
	if err != nil || stock < 0 {
		return res, errs.ErrClient
	}

	manufacturingDate, err := time.Parse(time.DateOnly, data.ManufacturingDate)
	if err != nil {
		return res, errs.ErrClient
	}

	expiryDate, err := time.Parse(time.DateOnly, data.ExpiryDate)
	if err != nil {
		return res, errs.ErrClient
	}

	listingDate, err := time.Parse(time.DateOnly, data.ListingDate)
	if err != nil {
		return res, errs.ErrClient
	}

	return domain.Product{
		ID:                          data.ID,
		ProductName:                 data.ProductName,
		Brand:                       data.Brand,
		Price:                       price,
		MarketPrice:                 marketPrice,
		PercentageOfDiscountOffered: discount,
		Stock:                       stock,
		Category:                    data.Category,
		Description:                 data.Description,
		Seller:                      data.Seller,
		DeliveryInfo:                data.DeliveryInfo,
		EMI:                         data.EMI,
		Images:                      data.Images,
		ManufacturingDate:           manufacturingDate,
		ExpiryDate:                  expiryDate,
		ListingDate:                 listingDate,
	}, nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (res domain.Product, err error) {
	data.ID = uuid.New().String()

	product, err := coerceProduct(data)
	if err != nil {
		return
	}

	if err = s.productRepo.AddProduct(ctx, product); err != nil {
		return res, errs.ErrPersistence
	}

	if err = s.catalogRepo.AddProduct(ctx, product.ID, data.Document()); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Str("productID", product.ID).Msg("relational row committed but catalog document write failed")
		return product, errs.ErrPartialWrite
	}

	s.publishEvent(ctx, "product_added", product.ID, product)

	return product, nil
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, data dto.ProductRequest) (res domain.Product, err error) {
	product, err := coerceProduct(data)
	if err != nil {
		return
	}

	if err = s.productRepo.UpdateProduct(ctx, product); err != nil {
		if err == errs.ErrNotFound {
			return res, err
		}
		return res, errs.ErrPersistence
	}

	// The document store receives the original un-coerced field set.
	if err = s.catalogRepo.UpdateProduct(ctx, product.ID, data.Document()); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "UpdateProduct").Str("productID", product.ID).Msg("relational row committed but catalog document is stale")
		return product, errs.ErrPartialWrite
	}

	s.publishEvent(ctx, "product_updated", product.ID, product)

	return product, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	if err = s.productRepo.DeleteProduct(ctx, id); err != nil {
		if err == errs.ErrNotFound {
			return err
		}
		return errs.ErrPersistence
	}

	if err = s.catalogRepo.DeleteProduct(ctx, id); err != nil {
		// The relational row is gone; a stale catalog document remains and
		// needs manual remediation. There is no automatic reconciliation.
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Str("productID", id).Msg("relational row deleted but stale catalog document remains")
		return errs.ErrPartialWrite
	}

	s.publishEvent(ctx, "product_deleted", id, dto.ProductRequest{ID: id})

	return nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (res pkgdto.PaginationResponse, err error) {
	docs, total, err := s.catalogRepo.GetProducts(ctx, filter)
	if err != nil {
		return res, errs.ErrInternalServer
	}

	res.Records = docs
	res.Metadata.TotalCount = uint64(total)
	res.Metadata.Limit = filter.Limit
	res.Metadata.Page = uint64(filter.Page)
	return
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (doc map[string]interface{}, err error) {
	doc, err = s.catalogRepo.GetProductByID(ctx, id)
	if err != nil {
		if err == errs.ErrNotFound {
			return nil, err
		}
		return nil, errs.ErrInternalServer
	}

	return doc, nil
}

func (s *ProductServiceImpl) publishEvent(ctx context.Context, eventType string, key string, data interface{}) {
	if s.publisher == nil {
		return
	}

	kafkaMsg := dto.KafkaMessage{
		EventType: eventType,
		Data:      data,
	}

	jsonMsg, err := json.Marshal(kafkaMsg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Msg("")
		return
	}

	if err := s.publisher.Publish(ctx, key, jsonMsg); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Str("eventType", eventType).Msg("")
	}
}
