package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/typesense/typesense-go/v2/typesense/api"
	"github.com/typesense/typesense-go/v2/typesense/api/pointer"

	"github.com/propie/recommendation-engine/internal/domain/entities"
	"github.com/propie/recommendation-engine/internal/domain/repositories"
	tsclient "github.com/propie/recommendation-engine/internal/infrastructure/clients/typesense"
)

const collectionName = tsclient.PropertiesCollection

// TypesenseAdapter implements candidate property retrieval on Typesense.
// Filterable facts are indexed as top-level fields; the full record
// travels alongside as serialized JSON so hits reconstruct without a
// second lookup.
type TypesenseAdapter struct {
	client *tsclient.Client
}

var _ repositories.PropertyRepository = (*TypesenseAdapter)(nil)

// NewTypesenseAdapter creates a new Typesense adapter
func NewTypesenseAdapter(client *tsclient.Client) *TypesenseAdapter {
	return &TypesenseAdapter{client: client}
}

// InitSchema ensures the collection exists
func (a *TypesenseAdapter) InitSchema(ctx context.Context) error {
	_, err := a.client.Client().Collection(collectionName).Retrieve(ctx)
	if err == nil {
		return nil
	}

	schema := &api.CollectionSchema{
		Name: collectionName,
		Fields: []api.Field{
			{Name: "id", Type: "string"},
			{Name: "address", Type: "string"},
			{Name: "region", Type: "string", Facet: pointer.True()},
			{Name: "property_type", Type: "string", Facet: pointer.True()},
			{Name: "bedrooms", Type: "int32"},
			{Name: "price", Type: "float"},
			{Name: "record", Type: "string", Index: pointer.False(), Optional: pointer.True()},
		},
	}

	if _, err := a.client.Client().Collections().Create(ctx, schema); err != nil {
		return fmt.Errorf("failed to create typesense collection: %w", err)
	}
	return nil
}

// Index upserts properties into the search index.
func (a *TypesenseAdapter) Index(ctx context.Context, properties []entities.PropertyRecord) error {
	for _, property := range properties {
		record, err := json.Marshal(property)
		if err != nil {
			return fmt.Errorf("failed to serialize property %s: %w", property.PropertyID, err)
		}

		document := map[string]interface{}{
			"id":            property.PropertyID,
			"address":       property.BasicInfo.Address,
			"region":        property.BasicInfo.Region,
			"property_type": string(property.BasicInfo.PropertyType),
			"bedrooms":      property.BasicInfo.Bedrooms,
			"price":         property.Pricing.ListPrice,
			"record":        string(record),
		}

		if _, err := a.client.Client().Collection(collectionName).Documents().Upsert(ctx, document); err != nil {
			return fmt.Errorf("failed to index property %s: %w", property.PropertyID, err)
		}
	}
	return nil
}

// Search returns candidate properties matching the filter.
func (a *TypesenseAdapter) Search(ctx context.Context, filter repositories.PropertySearchFilter) ([]entities.PropertyRecord, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}

	searchParams := &api.SearchCollectionParams{
		Q:       pointer.String("*"),
		QueryBy: pointer.String("address"),
		PerPage: pointer.Int(limit),
	}
	if filterBy := buildFilterBy(filter); filterBy != "" {
		searchParams.FilterBy = pointer.String(filterBy)
	}

	result, err := a.client.Client().Collection(collectionName).Documents().Search(ctx, searchParams)
	if err != nil {
		return nil, fmt.Errorf("failed to search properties: %w", err)
	}

	properties := []entities.PropertyRecord{}
	if result.Hits == nil {
		return properties, nil
	}
	for _, hit := range *result.Hits {
		if hit.Document == nil {
			continue
		}
		property, err := decodeRecord(*hit.Document)
		if err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	return properties, nil
}

// GetByID returns a single property by its identifier.
func (a *TypesenseAdapter) GetByID(ctx context.Context, propertyID string) (*entities.PropertyRecord, error) {
	document, err := a.client.Client().Collection(collectionName).Document(propertyID).Retrieve(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve property %s: %w", propertyID, err)
	}

	property, err := decodeRecord(document)
	if err != nil {
		return nil, err
	}
	return &property, nil
}

func buildFilterBy(filter repositories.PropertySearchFilter) string {
	var clauses []string
	if filter.Region != "" {
		clauses = append(clauses, fmt.Sprintf("region:=%s", filter.Region))
	}
	if filter.PropertyType != "" {
		clauses = append(clauses, fmt.Sprintf("property_type:=%s", filter.PropertyType))
	}
	if filter.MinPrice > 0 {
		clauses = append(clauses, fmt.Sprintf("price:>=%f", filter.MinPrice))
	}
	if filter.MaxPrice > 0 {
		clauses = append(clauses, fmt.Sprintf("price:<=%f", filter.MaxPrice))
	}
	if filter.MinBedrooms > 0 {
		clauses = append(clauses, fmt.Sprintf("bedrooms:>=%d", filter.MinBedrooms))
	}
	return strings.Join(clauses, " && ")
}

func decodeRecord(document map[string]interface{}) (entities.PropertyRecord, error) {
	raw, ok := document["record"].(string)
	if !ok {
		return entities.PropertyRecord{}, fmt.Errorf("property document missing record payload")
	}

	var property entities.PropertyRecord
	if err := json.Unmarshal([]byte(raw), &property); err != nil {
		return entities.PropertyRecord{}, fmt.Errorf("failed to decode property record: %w", err)
	}
	return property, nil
}
