package webscore

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/RobertCam/webscore/vo"
)

// The locality patterns are deliberately naive, first match wins. Their
// behavior is versioned against the rubric, do not tighten them without a
// rubric version bump.
var (
	localityPrepositionRe = regexp.MustCompile(`\b(?:in|at|near)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*)`)
	localityStateRe       = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)*),\s*([A-Z]{2})\b`)
)

// Derive infers secondary business facts from a parsed page. Pure and
// deterministic: candidate sources are probed in a fixed order (title,
// primary heading, structured-data name).
func Derive(page vo.ParsedPage) vo.DerivedFacts {
	facts := vo.DerivedFacts{}
	candidates := []string{
		page.Title,
		page.PrimaryHeading,
		structuredDataName(page.StructuredData),
	}

	for _, candidate := range candidates {
		fields := strings.Fields(candidate)
		if len(fields) == 0 {
			continue
		}
		facts.Brand = fields[0]
		break
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if m := localityPrepositionRe.FindStringSubmatch(candidate); m != nil {
			facts.Locality = m[1]
			break
		}
		if m := localityStateRe.FindStringSubmatch(candidate); m != nil {
			facts.Locality = m[1]
			break
		}
	}

	facts.Address = deriveAddress(page.StructuredData)
	if facts.Locality == "" && facts.Address != nil {
		facts.Locality = facts.Address.Locality
	}
	facts.Geo = deriveGeo(page.StructuredData)

	return facts
}

func structuredDataName(items []map[string]interface{}) string {
	for _, item := range items {
		name, ok := item["name"].(string)
		if !ok {
			continue
		}
		if name = strings.TrimSpace(name); name != "" {
			return name
		}
	}
	return ""
}

func deriveAddress(items []map[string]interface{}) *vo.Address {
	for _, item := range items {
		block, ok := item["address"].(map[string]interface{})
		if !ok {
			continue
		}
		address := &vo.Address{
			Street:   stringField(block, "streetAddress"),
			Locality: stringField(block, "addressLocality"),
			Region:   stringField(block, "addressRegion"),
			Postal:   stringField(block, "postalCode"),
			Country:  stringField(block, "addressCountry"),
		}
		if *address != (vo.Address{}) {
			return address
		}
	}
	return nil
}

func deriveGeo(items []map[string]interface{}) *vo.Geo {
	for _, item := range items {
		block, ok := item["geo"].(map[string]interface{})
		if !ok {
			continue
		}
		lat, latOK := numberField(block, "latitude")
		lon, lonOK := numberField(block, "longitude")
		if latOK && lonOK {
			return &vo.Geo{Lat: lat, Lon: lon}
		}
	}
	return nil
}

func stringField(m map[string]interface{}, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func numberField(m map[string]interface{}, key string) (float64, bool) {
	switch v := m[key].(type) {
	case float64:
		return v, true
	case string:
		f, errParse := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if errParse != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
