package utils

import (
	"encoding/json"
	"log/slog"
)

func DeserializeFromJSON(data []byte, v interface{}) error {
	err := json.Unmarshal(data, v)
	if err != nil {
		slog.Warn("[Utils] Failed to deserialize JSON",
			slog.String("error", err.Error()))
		return err
	}
	return err
}
