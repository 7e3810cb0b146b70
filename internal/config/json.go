// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] for JSON files. Durations
// are written as strings ("5s").
type StructuredJSONConfig struct {
	App struct {
		LogLevel    string `json:"log_level"`
		LogFile     string `json:"log_file"`
		MaxAttempts int    `json:"max_attempts"`
	} `json:"app"`

	Storage struct {
		VaultDir   string `json:"vault_dir"`
		KeyBackend string `json:"key_backend"`
		DB         struct {
			DSN string `json:"dsn"`
		} `json:"db"`
	} `json:"storage"`

	Biometrics struct {
		VoiceThreshold  float64  `json:"voice_threshold"`
		FaceTolerance   float64  `json:"face_tolerance"`
		VoiceDuration   Duration `json:"voice_duration"`
		SampleRate      int      `json:"sample_rate"`
		CaptureRetries  int      `json:"capture_retries"`
		FaceCaptureCmd  string   `json:"face_capture_cmd"`
		FaceExtractCmd  string   `json:"face_extract_cmd"`
		VoiceRecordCmd  string   `json:"voice_record_cmd"`
		VoiceExtractCmd string   `json:"voice_extract_cmd"`
	} `json:"biometrics"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			LogLevel:    jsonCfg.App.LogLevel,
			LogFile:     jsonCfg.App.LogFile,
			MaxAttempts: jsonCfg.App.MaxAttempts,
		},
		Storage: Storage{
			VaultDir:   jsonCfg.Storage.VaultDir,
			KeyBackend: jsonCfg.Storage.KeyBackend,
			DB:         DB{DSN: jsonCfg.Storage.DB.DSN},
		},
		Biometrics: Biometrics{
			VoiceThreshold:  jsonCfg.Biometrics.VoiceThreshold,
			FaceTolerance:   jsonCfg.Biometrics.FaceTolerance,
			VoiceDuration:   time.Duration(jsonCfg.Biometrics.VoiceDuration),
			SampleRate:      jsonCfg.Biometrics.SampleRate,
			CaptureRetries:  jsonCfg.Biometrics.CaptureRetries,
			FaceCaptureCmd:  jsonCfg.Biometrics.FaceCaptureCmd,
			FaceExtractCmd:  jsonCfg.Biometrics.FaceExtractCmd,
			VoiceRecordCmd:  jsonCfg.Biometrics.VoiceRecordCmd,
			VoiceExtractCmd: jsonCfg.Biometrics.VoiceExtractCmd,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON
// unmarshaling from strings like "5s" as well as from nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
