package checks

import (
	"fmt"
	"sort"
	"strings"

	"github.com/RobertCam/webscore/vo"
)

// Type allow-lists. Matching is substring-based against the declared
// @type token and case-sensitive, so LocalBusiness subtypes that embed
// the parent name still count.
var (
	coreBusinessTypes = []string{
		"LocalBusiness",
		"Organization",
		"Store",
		"Restaurant",
		"ProfessionalService",
		"MedicalBusiness",
		"FoodEstablishment",
		"AutomotiveBusiness",
		"HomeAndConstructionBusiness",
		"LegalService",
		"RealEstateAgent",
		"Dentist",
	}
	contentTypes = []string{
		"FAQPage",
		"Question",
		"Product",
		"Service",
		"Article",
		"BlogPosting",
		"HowTo",
		"Event",
		"Menu",
		"Offer",
	}
	richContentTypes = []string{
		"Review",
		"AggregateRating",
		"ImageObject",
		"VideoObject",
		"BreadcrumbList",
	}
	contactFields = []string{
		"telephone",
		"email",
		"address",
		"url",
		"openingHours",
		"openingHoursSpecification",
		"contactPoint",
	}
)

func itemTypes(item map[string]interface{}) []string {
	switch v := item["@type"].(type) {
	case string:
		return []string{v}
	case []interface{}:
		types := []string{}
		for _, entry := range v {
			if s, ok := entry.(string); ok {
				types = append(types, s)
			}
		}
		return types
	}
	return nil
}

func matchTypes(items []map[string]interface{}, allow []string) []string {
	matched := map[string]bool{}
	for _, item := range items {
		for _, declared := range itemTypes(item) {
			for _, allowed := range allow {
				if strings.Contains(declared, allowed) {
					matched[allowed] = true
				}
			}
		}
	}
	out := make([]string, 0, len(matched))
	for t := range matched {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func declaredTypes(items []map[string]interface{}) []string {
	types := []string{}
	for _, item := range items {
		types = append(types, itemTypes(item)...)
	}
	return types
}

func schemaPresent(ctx *Context) vo.CheckResult {
	n := len(ctx.Page.StructuredData)
	if n == 0 {
		return result("schema-present", vo.CheckStatusFail, "no parseable JSON-LD found")
	}
	return result("schema-present", vo.CheckStatusPass,
		fmt.Sprintf("%d JSON-LD item(s) parsed, types: %s", n,
			strings.Join(declaredTypes(ctx.Page.StructuredData), ", ")))
}

func schemaCoreType(ctx *Context) vo.CheckResult {
	matched := matchTypes(ctx.Page.StructuredData, coreBusinessTypes)
	if len(matched) > 0 {
		return result("schema-core-type", vo.CheckStatusPass,
			"core business type declared: "+strings.Join(matched, ", "))
	}
	declared := declaredTypes(ctx.Page.StructuredData)
	if len(declared) == 0 {
		return result("schema-core-type", vo.CheckStatusFail, "no structured data types declared")
	}
	return result("schema-core-type", vo.CheckStatusFail,
		"no core business type among: "+strings.Join(declared, ", "))
}

func schemaContentTypes(ctx *Context) vo.CheckResult {
	matched := matchTypes(ctx.Page.StructuredData, contentTypes)
	evidence := fmt.Sprintf("%d content enhancement type(s): %s",
		len(matched), strings.Join(matched, ", "))
	switch {
	case len(matched) >= 2:
		return result("schema-content-types", vo.CheckStatusPass, evidence)
	case len(matched) == 1:
		return result("schema-content-types", vo.CheckStatusPartial, evidence)
	default:
		return result("schema-content-types", vo.CheckStatusFail,
			"no content enhancement types (FAQ, Product, Service, Article, ...) declared")
	}
}

func schemaContactFields(ctx *Context) vo.CheckResult {
	found := map[string]bool{}
	for _, item := range ctx.Page.StructuredData {
		collectContactFields(item, found)
	}
	names := make([]string, 0, len(found))
	for name := range found {
		names = append(names, name)
	}
	sort.Strings(names)
	evidence := fmt.Sprintf("%d contact field(s) in structured data: %s",
		len(names), strings.Join(names, ", "))
	switch {
	case len(names) >= 3:
		return result("schema-contact-fields", vo.CheckStatusPass, evidence)
	case len(names) >= 1:
		return result("schema-contact-fields", vo.CheckStatusPartial, evidence)
	default:
		return result("schema-contact-fields", vo.CheckStatusFail,
			"no contact fields (telephone, email, address, ...) in structured data")
	}
}

func collectContactFields(m map[string]interface{}, found map[string]bool) {
	for key, value := range m {
		for _, field := range contactFields {
			if key == field {
				found[field] = true
			}
		}
		if nested, ok := value.(map[string]interface{}); ok {
			collectContactFields(nested, found)
		}
	}
}

func schemaRichTypes(ctx *Context) vo.CheckResult {
	matched := matchTypes(ctx.Page.StructuredData, richContentTypes)
	evidence := fmt.Sprintf("%d rich content type(s): %s",
		len(matched), strings.Join(matched, ", "))
	switch {
	case len(matched) >= 2:
		return result("schema-rich-types", vo.CheckStatusPass, evidence)
	case len(matched) == 1:
		return result("schema-rich-types", vo.CheckStatusPartial, evidence)
	default:
		return result("schema-rich-types", vo.CheckStatusFail,
			"no rich content types (Review, ImageObject, BreadcrumbList, ...) declared")
	}
}

func schemaDateModified(ctx *Context) vo.CheckResult {
	raw := findDateModified(ctx.Page.StructuredData)
	if raw == "" {
		return result("schema-date-modified", vo.CheckStatusFail,
			"no dateModified in structured data")
	}
	t, ok := parseDate(raw)
	if !ok {
		return result("schema-date-modified", vo.CheckStatusPartial,
			"dateModified present but unparsable: "+snippet(raw))
	}
	if isFresh(t, ctx.Now) {
		return result("schema-date-modified", vo.CheckStatusPass,
			fmt.Sprintf("dateModified %s is %d day(s) old", raw, daysOld(t, ctx.Now)))
	}
	return result("schema-date-modified", vo.CheckStatusPartial,
		fmt.Sprintf("dateModified %s is stale, %d day(s) old", raw, daysOld(t, ctx.Now)))
}

func findDateModified(items []map[string]interface{}) string {
	for _, item := range items {
		if s, ok := item["dateModified"].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
