package dto

// --- Menu ---

type MenuSector struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type MenuResponse struct {
	Menu map[string]MenuSector `json:"menu"`
}

// --- Subprocess listing ---

type SubprocessesRequest struct {
	SectorKey string `json:"sector_key" validate:"required"`
	Language  string `json:"language"`
}

type SubprocessesResponse struct {
	SectorName   string            `json:"sector_name"`
	Subprocesses map[string]string `json:"subprocesses"`
}

// --- Complaint resolution ---

type ResolveRequest struct {
	Query         string `json:"query"`
	SectorKey     string `json:"sector_key"`
	SubprocessKey string `json:"subprocess_key"`
	Language      string `json:"language"`
}

// ResolveResponse keeps the original wire field "is_telecom": clients key off
// it to distinguish a rejection from a resolution.
type ResolveResponse struct {
	Resolution           string `json:"resolution"`
	IsTelecom            bool   `json:"is_telecom"`
	IdentifiedSubprocess string `json:"identified_subprocess,omitempty"`
}

// --- Language detection ---

type DetectLanguageRequest struct {
	Text string `json:"text"`
}

type DetectLanguageResponse struct {
	Language string `json:"language"`
}
