package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk JSON layout of the configuration file.
type StructuredJSONConfig struct {
	App struct {
		Version      string `json:"version"`
		TokenSignKey string `json:"token_sign_key"`
		TokenIssuer  string `json:"token_issuer"`
		APIKeyHash   string `json:"api_key_hash"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver  string `json:"driver"`
			DSN     string `json:"dsn"`
			Migrate bool   `json:"migrate"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Blueprints struct {
		Prefix    string `json:"prefix"`
		Pluralize bool   `json:"pluralize"`
	} `json:"blueprints,omitempty"`

	BlueprintUtils struct {
		Policy string `json:"policy"`
	} `json:"blueprint_utils,omitempty"`

	Models struct {
		Dir string `json:"dir"`
	} `json:"models,omitempty"`

	Client struct {
		BaseURL        string   `json:"base_url"`
		Prefix         string   `json:"prefix"`
		Token          string   `json:"token"`
		APIKey         string   `json:"api_key"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"client,omitempty"`
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
			Version:      jsonCfg.App.Version,
			TokenSignKey: jsonCfg.App.TokenSignKey,
			TokenIssuer:  jsonCfg.App.TokenIssuer,
			APIKeyHash:   jsonCfg.App.APIKeyHash,
		},
		Storage: Storage{
			DB: DB{
				Driver:  jsonCfg.Storage.DB.Driver,
				DSN:     jsonCfg.Storage.DB.DSN,
				Migrate: jsonCfg.Storage.DB.Migrate,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Blueprints: Blueprints{
			Prefix:    jsonCfg.Blueprints.Prefix,
			Pluralize: jsonCfg.Blueprints.Pluralize,
		},
		BlueprintUtils: BlueprintUtils{
			Policy: jsonCfg.BlueprintUtils.Policy,
		},
		Models: Models{
			Dir: jsonCfg.Models.Dir,
		},
		Client: Client{
			BaseURL:        jsonCfg.Client.BaseURL,
			Prefix:         jsonCfg.Client.Prefix,
			Token:          jsonCfg.Client.Token,
			APIKey:         jsonCfg.Client.APIKey,
			RequestTimeout: time.Duration(jsonCfg.Client.RequestTimeout),
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
