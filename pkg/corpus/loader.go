package corpus

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Document is a source document discovered in the corpus directory, reduced
// to plain text.
type Document struct {
	Id   string // file name, stable across re-ingestions
	Text string
}

// LoadDocuments scans dir (non-recursive) and extracts text from every
// supported file. Plain text and markdown pass through as-is; MITRE ATT&CK
// STIX bundles are rendered one passage per attack-pattern. Unsupported
// extensions are skipped with a log line, not an error.
func LoadDocuments(dir string) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read corpus dir %s: %w", dir, err)
	}

	var documents []Document
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		path := filepath.Join(dir, name)

		switch {
		case strings.HasSuffix(name, ".txt") || strings.HasSuffix(name, ".md"):
			data, err := os.ReadFile(path)
			if err != nil {
				log.Printf("[WARN] Error processing %s: %v", name, err)
				continue
			}
			documents = append(documents, Document{Id: name, Text: string(data)})

		case strings.HasSuffix(name, ".json") && strings.Contains(strings.ToLower(name), "attack"):
			doc, err := loadMitreDocument(path, name)
			if err != nil {
				log.Printf("[WARN] Error processing %s: %v", name, err)
				continue
			}
			documents = append(documents, doc)

		default:
			log.Printf("[INFO] Ignored unsupported file: %s", name)
		}
	}

	// Stable ingestion order regardless of filesystem quirks.
	sort.Slice(documents, func(i, j int) bool {
		return documents[i].Id < documents[j].Id
	})
	return documents, nil
}

// --- MITRE ATT&CK STIX bundle ---

type stixBundle struct {
	Objects []stixObject `json:"objects"`
}

type stixObject struct {
	Type               string              `json:"type"`
	Name               string              `json:"name"`
	Description        string              `json:"description"`
	Revoked            bool                `json:"revoked"`
	ExternalReferences []stixExternalRef   `json:"external_references"`
	Platforms          []string            `json:"x_mitre_platforms"`
	KillChainPhases    []stixKillChainStep `json:"kill_chain_phases"`
}

type stixExternalRef struct {
	ExternalId string `json:"external_id"`
}

type stixKillChainStep struct {
	PhaseName string `json:"phase_name"`
}

func loadMitreDocument(path, name string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, err
	}

	var bundle stixBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return Document{}, err
	}

	var sb strings.Builder
	for _, obj := range bundle.Objects {
		if obj.Type != "attack-pattern" || obj.Revoked {
			continue
		}

		techniqueId := ""
		for _, ref := range obj.ExternalReferences {
			if ref.ExternalId != "" {
				techniqueId = ref.ExternalId
				break
			}
		}

		phases := make([]string, 0, len(obj.KillChainPhases))
		for _, p := range obj.KillChainPhases {
			phases = append(phases, p.PhaseName)
		}

		sb.WriteString(fmt.Sprintf("Name: %s\nID: %s\nDescription: %s\nPlatforms: %s\nKill Chain Phases: %s\n\n",
			obj.Name,
			techniqueId,
			obj.Description,
			strings.Join(obj.Platforms, ", "),
			strings.Join(phases, ", "),
		))
	}

	return Document{Id: name, Text: sb.String()}, nil
}
