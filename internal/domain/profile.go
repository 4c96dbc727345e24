package domain

import (
	"strconv"
	"strings"
)

// Canonical field names of the candidate profile. The order of requiredFields
// then optionalFields is also the question-asking order.
const (
	FieldFullName         = "full_name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldExperienceYears  = "experience_years"
	FieldDesiredPositions = "desired_positions"
	FieldLocation         = "location"
	FieldTechStack        = "tech_stack"
)

var (
	requiredFields = []string{FieldFullName, FieldEmail, FieldTechStack}
	optionalFields = []string{FieldPhone, FieldExperienceYears, FieldDesiredPositions, FieldLocation}
)

// CandidateProfile is the structured record of extracted applicant attributes.
// Fields are populated field-by-field by the extraction pipeline only; a value
// is either confirmed by extraction or absent, never invented.
type CandidateProfile struct {
	FullName         string   `json:"full_name,omitempty"`
	Email            string   `json:"email,omitempty"`
	Phone            string   `json:"phone,omitempty"`
	ExperienceYears  string   `json:"experience_years,omitempty"`
	DesiredPositions []string `json:"desired_positions,omitempty"`
	Location         string   `json:"location,omitempty"`
	TechStack        string   `json:"tech_stack,omitempty"`
}

// Fields returns the populated fields only, keyed by canonical name.
func (p CandidateProfile) Fields() map[string]any {
	out := map[string]any{}
	if p.FullName != "" {
		out[FieldFullName] = p.FullName
	}
	if p.Email != "" {
		out[FieldEmail] = p.Email
	}
	if p.Phone != "" {
		out[FieldPhone] = p.Phone
	}
	if p.ExperienceYears != "" {
		out[FieldExperienceYears] = p.ExperienceYears
	}
	if len(p.DesiredPositions) > 0 {
		out[FieldDesiredPositions] = p.DesiredPositions
	}
	if p.Location != "" {
		out[FieldLocation] = p.Location
	}
	if p.TechStack != "" {
		out[FieldTechStack] = p.TechStack
	}
	return out
}

func (p CandidateProfile) has(field string) bool {
	switch field {
	case FieldFullName:
		return p.FullName != ""
	case FieldEmail:
		return p.Email != ""
	case FieldPhone:
		return p.Phone != ""
	case FieldExperienceYears:
		return p.ExperienceYears != ""
	case FieldDesiredPositions:
		return len(p.DesiredPositions) > 0
	case FieldLocation:
		return p.Location != ""
	case FieldTechStack:
		return p.TechStack != ""
	}
	return false
}

// CompletionPercentage scores gathered information: each required field is
// worth 15 points, each optional field 5, capped at 100.
func (p CandidateProfile) CompletionPercentage() int {
	score := 0
	for _, f := range requiredFields {
		if p.has(f) {
			score += 15
		}
	}
	for _, f := range optionalFields {
		if p.has(f) {
			score += 5
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}

// MissingFields returns missing required fields first, in canonical order;
// optional fields are listed only once all required ones are present.
func (p CandidateProfile) MissingFields() []string {
	var missing []string
	for _, f := range requiredFields {
		if !p.has(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return missing
	}
	for _, f := range optionalFields {
		if !p.has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

// RequiredComplete reports whether the three required fields are populated.
// The conversation engine gates the move to the questioning phase on this.
func (p CandidateProfile) RequiredComplete() bool {
	for _, f := range requiredFields {
		if !p.has(f) {
			return false
		}
	}
	return true
}

// IsComplete reports whether all seven fields are populated.
func (p CandidateProfile) IsComplete() bool {
	for _, f := range append(append([]string{}, requiredFields...), optionalFields...) {
		if !p.has(f) {
			return false
		}
	}
	return true
}

// ApplyExtracted merges one extracted value into the profile. Only the seven
// allow-listed field names are accepted; unknown keys and empty values are
// ignored. New values overwrite existing ones to support corrections.
// Returns true when the profile changed.
func (p *CandidateProfile) ApplyExtracted(field string, value any) bool {
	switch field {
	case FieldFullName, FieldEmail, FieldPhone, FieldLocation, FieldTechStack, FieldExperienceYears:
		s, ok := coerceString(value)
		if !ok || strings.TrimSpace(s) == "" {
			return false
		}
		s = strings.TrimSpace(s)
		switch field {
		case FieldFullName:
			p.FullName = s
		case FieldEmail:
			p.Email = s
		case FieldPhone:
			p.Phone = s
		case FieldLocation:
			p.Location = s
		case FieldTechStack:
			p.TechStack = s
		case FieldExperienceYears:
			p.ExperienceYears = s
		}
		return true
	case FieldDesiredPositions:
		list, ok := coerceStringList(value)
		if !ok || len(list) == 0 {
			return false
		}
		p.DesiredPositions = list
		return true
	}
	return false
}

func coerceString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		if t == 0 {
			return "", false
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		if t == 0 {
			return "", false
		}
		return strconv.Itoa(t), true
	}
	return "", false
}

func coerceStringList(v any) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		out := make([]string, 0, len(t))
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out, true
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out, true
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}, true
		}
	}
	return nil, false
}
