package services

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"tourism-backend/models"
)

// CatalogService is the read side of the inventory. Every list call applies
// the same two-tier policy: run the live query; on a query error or an empty
// result serve the matching filtered sample set instead, so the catalog is
// never blank before the store is seeded. Single-item reads fall back to a
// sample lookup by id and report ErrNotFound only when both tiers miss.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func listWithFallback[T any](q *gorm.DB, sample []T, label string) []T {
	var out []T
	if err := q.Find(&out).Error; err != nil {
		log.Printf("catalog: %s query failed, serving sample data: %v", label, err)
		return sample
	}
	if len(out) == 0 {
		return sample
	}
	return out
}

func getWithFallback[T any](q *gorm.DB, id string, sample []T, idOf func(T) string, label string) (T, error) {
	var out T
	err := q.First(&out).Error
	if err == nil {
		return out, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("catalog: %s lookup failed, trying sample data: %v", label, err)
	}
	for _, s := range sample {
		if idOf(s) == id {
			return s, nil
		}
	}
	var zero T
	return zero, ErrNotFound
}

func filterSlice[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// ---------------------------
// Destinations
// ---------------------------

func (s *CatalogService) Destinations(featuredOnly bool) []models.Destination {
	q := s.DB.Model(&models.Destination{}).Order("name")
	sample := SampleDestinations
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
		sample = filterSlice(sample, func(d models.Destination) bool { return d.IsFeatured })
	}
	return listWithFallback(q, sample, "destinations")
}

func (s *CatalogService) Destination(id string) (models.Destination, error) {
	q := s.DB.Where("id = ?", id)
	return getWithFallback(q, id, SampleDestinations,
		func(d models.Destination) string { return d.ID }, "destination")
}

// ---------------------------
// Hotels
// ---------------------------

func (s *CatalogService) Hotels(featuredOnly bool, destinationID string) []models.Hotel {
	q := s.DB.Model(&models.Hotel{}).Preload("Destination").Order("name")
	sample := SampleHotels
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
		sample = filterSlice(sample, func(h models.Hotel) bool { return h.IsFeatured })
	}
	if destinationID != "" {
		q = q.Where("destination_id = ?", destinationID)
		sample = filterSlice(sample, func(h models.Hotel) bool {
			return h.DestinationID != nil && *h.DestinationID == destinationID
		})
	}
	return listWithFallback(q, sample, "hotels")
}

func (s *CatalogService) Hotel(id string) (models.Hotel, error) {
	q := s.DB.Preload("Destination").Where("id = ?", id)
	return getWithFallback(q, id, SampleHotels,
		func(h models.Hotel) string { return h.ID }, "hotel")
}

// ---------------------------
// Packages
// ---------------------------

func (s *CatalogService) Packages(featuredOnly bool) []models.Package {
	q := s.DB.Model(&models.Package{}).Order("name")
	sample := SamplePackages
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
		sample = filterSlice(sample, func(p models.Package) bool { return p.IsFeatured })
	}
	return listWithFallback(q, sample, "packages")
}

func (s *CatalogService) Package(id string) (models.Package, error) {
	q := s.DB.Where("id = ?", id)
	return getWithFallback(q, id, SamplePackages,
		func(p models.Package) string { return p.ID }, "package")
}

// ---------------------------
// Houseboats
// ---------------------------

func (s *CatalogService) Houseboats(featuredOnly bool) []models.Houseboat {
	q := s.DB.Model(&models.Houseboat{}).Order("name")
	sample := SampleHouseboats
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
		sample = filterSlice(sample, func(h models.Houseboat) bool { return h.IsFeatured })
	}
	return listWithFallback(q, sample, "houseboats")
}

func (s *CatalogService) Houseboat(id string) (models.Houseboat, error) {
	q := s.DB.Where("id = ?", id)
	return getWithFallback(q, id, SampleHouseboats,
		func(h models.Houseboat) string { return h.ID }, "houseboat")
}

// ---------------------------
// Taxis
// ---------------------------

func (s *CatalogService) Taxis(featuredOnly bool) []models.Taxi {
	q := s.DB.Model(&models.Taxi{}).Order("name")
	sample := SampleTaxis
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
		sample = filterSlice(sample, func(t models.Taxi) bool { return t.IsFeatured })
	}
	return listWithFallback(q, sample, "taxis")
}

func (s *CatalogService) Taxi(id string) (models.Taxi, error) {
	q := s.DB.Where("id = ?", id)
	return getWithFallback(q, id, SampleTaxis,
		func(t models.Taxi) string { return t.ID }, "taxi")
}

// ---------------------------
// Activities
// ---------------------------

func (s *CatalogService) Activities(featuredOnly bool, destinationID string) []models.Activity {
	q := s.DB.Model(&models.Activity{}).Preload("Destination").Order("name")
	sample := SampleActivities
	if featuredOnly {
		q = q.Where("is_featured = ?", true)
		sample = filterSlice(sample, func(a models.Activity) bool { return a.IsFeatured })
	}
	if destinationID != "" {
		q = q.Where("destination_id = ?", destinationID)
		sample = filterSlice(sample, func(a models.Activity) bool {
			return a.DestinationID != nil && *a.DestinationID == destinationID
		})
	}
	return listWithFallback(q, sample, "activities")
}

func (s *CatalogService) Activity(id string) (models.Activity, error) {
	q := s.DB.Preload("Destination").Where("id = ?", id)
	return getWithFallback(q, id, SampleActivities,
		func(a models.Activity) string { return a.ID }, "activity")
}

// ---------------------------
// Kind dispatch
// ---------------------------

func asItem[T any](v T, err error) (any, error) {
	if err != nil {
		return nil, err
	}
	return v, nil
}

// Item resolves a bookable item by its validated kind tag. The mapping is
// the single place a booking_type is turned into a table read.
func (s *CatalogService) Item(kind models.ItemKind, id string) (any, error) {
	switch kind {
	case models.KindHotel:
		return asItem(s.Hotel(id))
	case models.KindPackage:
		return asItem(s.Package(id))
	case models.KindHouseboat:
		return asItem(s.Houseboat(id))
	case models.KindActivity:
		return asItem(s.Activity(id))
	case models.KindTaxi:
		return asItem(s.Taxi(id))
	default:
		return nil, ErrNotFound
	}
}
