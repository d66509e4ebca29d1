package webscore

import (
	"testing"

	"github.com/RobertCam/webscore/vo"
	"github.com/stretchr/testify/assert"
)

func TestDeriveBrandFromTitle(t *testing.T) {
	facts := Derive(vo.ParsedPage{Title: "Acme Plumbing in Denver"})
	assert.Equal(t, "Acme", facts.Brand)
}

func TestDeriveBrandFallsBackToHeading(t *testing.T) {
	facts := Derive(vo.ParsedPage{PrimaryHeading: "Riverside Bakery"})
	assert.Equal(t, "Riverside", facts.Brand)
}

func TestDeriveBrandFromSchemaName(t *testing.T) {
	facts := Derive(vo.ParsedPage{
		StructuredData: []map[string]interface{}{
			{"@type": "LocalBusiness", "name": "Harbor Dental"},
		},
	})
	assert.Equal(t, "Harbor", facts.Brand)
}

func TestDeriveLocalityPreposition(t *testing.T) {
	facts := Derive(vo.ParsedPage{Title: "Acme Plumbing in Salt Lake City"})
	assert.Equal(t, "Salt Lake City", facts.Locality)
}

func TestDeriveLocalityStateCode(t *testing.T) {
	facts := Derive(vo.ParsedPage{Title: "Acme Plumbing - Denver, CO"})
	assert.Equal(t, "Denver", facts.Locality)
}

func TestDeriveLocalityFromAddressBlock(t *testing.T) {
	facts := Derive(vo.ParsedPage{
		Title: "acme plumbing",
		StructuredData: []map[string]interface{}{
			{
				"@type": "LocalBusiness",
				"address": map[string]interface{}{
					"streetAddress":   "12 Water St",
					"addressLocality": "Portland",
					"addressRegion":   "OR",
					"postalCode":      "97201",
				},
			},
		},
	})
	assert.Equal(t, "Portland", facts.Locality)
	if assert.NotNil(t, facts.Address) {
		assert.Equal(t, "12 Water St", facts.Address.Street)
		assert.Equal(t, "OR", facts.Address.Region)
	}
}

func TestDeriveGeo(t *testing.T) {
	facts := Derive(vo.ParsedPage{
		StructuredData: []map[string]interface{}{
			{
				"geo": map[string]interface{}{
					"latitude":  45.52,
					"longitude": "-122.68",
				},
			},
		},
	})
	if assert.NotNil(t, facts.Geo) {
		assert.Equal(t, 45.52, facts.Geo.Lat)
		assert.Equal(t, -122.68, facts.Geo.Lon)
	}
}

func TestDeriveWhitespaceOnlySchemaName(t *testing.T) {
	page := Parse(`<html><head><script type="application/ld+json">
{"@type":"LocalBusiness","name":"   "}
</script></head><body></body></html>`)
	facts := Derive(page)
	assert.Equal(t, "", facts.Brand)
	assert.Equal(t, "", facts.Locality)
}

func TestDeriveEmptyPage(t *testing.T) {
	facts := Derive(vo.ParsedPage{})
	assert.Equal(t, "", facts.Brand)
	assert.Equal(t, "", facts.Locality)
	assert.Nil(t, facts.Address)
	assert.Nil(t, facts.Geo)
}

func TestDeriveIdempotent(t *testing.T) {
	page := Parse(testDocHTML)
	assert.Equal(t, Derive(page), Derive(page))
}
