package synthesis

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/dealdesk/dealdesk/pkg/models"
)

// serialize converts any agent value into JSON-clean form (maps, slices,
// strings, float64, bool, nil). Typed structs from the deterministic agents
// round-trip through their JSON tags so the downstream pipeline sees one
// uniform shape.
func serialize(v any) any {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	var out any
	if err := json.Unmarshal(b, &out); err != nil {
		return nil
	}
	return out
}

// finding is one consolidated diligence finding.
type finding struct {
	Category string
	Subject  string
	Detail   string
	Agents   []string
}

// dedupeFindings merges semantically equal findings across agent payloads:
// same category plus same normalized subject collapse into one entry
// attributed to every contributing agent. Returns the findings in roster
// order and the number of merges performed.
func dedupeFindings(records map[string]models.AgentRecord, roster []string) ([]map[string]any, int) {
	var ordered []*finding
	index := make(map[string]*finding)
	merged := 0

	for _, name := range roster {
		rec, ok := records[name]
		if !ok {
			continue
		}
		payload := asMap(serialize(rec.Payload))
		items, ok := payload["findings"].([]any)
		if !ok {
			continue
		}
		for _, item := range items {
			m, ok := item.(map[string]any)
			if !ok {
				continue
			}
			category, _ := m["category"].(string)
			subject, _ := m["subject"].(string)
			detail, _ := m["detail"].(string)
			if subject == "" {
				continue
			}

			key := strings.ToLower(strings.TrimSpace(category)) + "|" + normalizeSubject(subject)
			if existing, ok := index[key]; ok {
				merged++
				if !contains(existing.Agents, name) {
					existing.Agents = append(existing.Agents, name)
				}
				// Keep the longer detail; the shorter one is assumed
				// to be the same observation stated more briefly.
				if len(detail) > len(existing.Detail) {
					existing.Detail = detail
				}
				continue
			}
			f := &finding{Category: category, Subject: subject, Detail: detail, Agents: []string{name}}
			index[key] = f
			ordered = append(ordered, f)
		}
	}

	out := make([]map[string]any, len(ordered))
	for i, f := range ordered {
		sort.Strings(f.Agents)
		out[i] = map[string]any{
			"category": f.Category,
			"subject":  f.Subject,
			"detail":   f.Detail,
			"agents":   f.Agents,
		}
	}
	return out, merged
}

// normalizeSubject folds case and whitespace so "Customer Concentration"
// and "customer  concentration" compare equal.
func normalizeSubject(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
