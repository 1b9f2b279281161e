package repository

import (
	"encoding/json"
	"log"
	"os"

	"migranthealth/models"
)

// FileStateRepo keeps the serialized AppState in a single JSON file.
// Timestamps round-trip through RFC3339 strings on the way in and out.
type FileStateRepo struct {
	Path string
}

func NewFileStateRepo(path string) *FileStateRepo {
	return &FileStateRepo{Path: path}
}

func (r *FileStateRepo) Load() *models.AppState {
	raw, err := os.ReadFile(r.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Println("Error reading saved data:", err)
		}
		return nil
	}
	var state models.AppState
	if err := json.Unmarshal(raw, &state); err != nil {
		log.Println("Error loading saved data:", err)
		return nil
	}
	return &state
}

func (r *FileStateRepo) Save(state models.AppState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		log.Println("Error serializing state:", err)
		return err
	}
	if err := os.WriteFile(r.Path, raw, 0644); err != nil {
		log.Println("Error writing state file:", err)
		return err
	}
	return nil
}
