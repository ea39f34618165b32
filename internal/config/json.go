package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		WSAddress      string   `json:"ws_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		Resources             []string `json:"resources"`
		DebounceWindow        Duration `json:"debounce_window"`
		ManualSyncMinInterval Duration `json:"manual_min_interval"`
		InitialSyncGrace      Duration `json:"initial_grace"`
		RetentionLimit        int      `json:"retention_limit"`
	} `json:"sync,omitempty"`

	Transport struct {
		HeartbeatInterval    Duration `json:"heartbeat_interval"`
		ReconnectBase        Duration `json:"reconnect_base"`
		ReconnectCap         Duration `json:"reconnect_cap"`
		ReconnectMaxAttempts int      `json:"reconnect_max_attempts"`
		AuthFailureBound     int      `json:"auth_failure_bound"`
		AuthFailureDebounce  Duration `json:"auth_failure_debounce"`
	} `json:"transport,omitempty"`

	Workers struct {
		SyncInterval Duration `json:"sync_interval"`
	} `json:"workers,omitempty"`
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
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			WSAddress:      jsonCfg.Adapter.WSAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Sync: Sync{
			Resources:             jsonCfg.Sync.Resources,
			DebounceWindow:        time.Duration(jsonCfg.Sync.DebounceWindow),
			ManualSyncMinInterval: time.Duration(jsonCfg.Sync.ManualSyncMinInterval),
			InitialSyncGrace:      time.Duration(jsonCfg.Sync.InitialSyncGrace),
			RetentionLimit:        jsonCfg.Sync.RetentionLimit,
		},
		Transport: Transport{
			HeartbeatInterval:    time.Duration(jsonCfg.Transport.HeartbeatInterval),
			ReconnectBase:        time.Duration(jsonCfg.Transport.ReconnectBase),
			ReconnectCap:         time.Duration(jsonCfg.Transport.ReconnectCap),
			ReconnectMaxAttempts: jsonCfg.Transport.ReconnectMaxAttempts,
			AuthFailureBound:     jsonCfg.Transport.AuthFailureBound,
			AuthFailureDebounce:  time.Duration(jsonCfg.Transport.AuthFailureDebounce),
		},
		Workers: Workers{
			SyncInterval: time.Duration(jsonCfg.Workers.SyncInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
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
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
