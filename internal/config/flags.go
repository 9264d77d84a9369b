package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from args (without the program
// name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-driver database driver (postgres, sqlite3)
//	-d database DSN
//	-migrate apply example schema migrations
//	-models directory with model definitions
//	-prefix blueprint route prefix
//	-pluralize pluralize blueprint route names
//	-policy policy applied to blueprint utility routes
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-api-key-hash bcrypt hash of the accepted api key
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-base-url client: blueprint server address
//	-token client: bearer token
//	-api-key client: api key
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var driver, databaseDSN string
	var migrate bool
	var modelsDir string
	var prefix string
	var pluralize bool
	var policy string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer, apiKeyHash string
	var requestTimeout time.Duration
	var baseURL, token, apiKey string

	fs := flag.NewFlagSet("blueprint-utils", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&driver, "driver", "", "Database driver (postgres, sqlite3)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.BoolVar(&migrate, "migrate", false, "Apply example schema migrations")
	fs.StringVar(&modelsDir, "models", "", "Model definitions directory")
	fs.StringVar(&prefix, "prefix", "", "Blueprint route prefix")
	fs.BoolVar(&pluralize, "pluralize", false, "Pluralize blueprint route names")
	fs.StringVar(&policy, "policy", "", "Policy applied to blueprint utility routes")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.StringVar(&apiKeyHash, "api-key-hash", "", "Bcrypt hash of the accepted API key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&baseURL, "base-url", "", "Blueprint server address (client)")
	fs.StringVar(&token, "token", "", "Bearer token (client)")
	fs.StringVar(&apiKey, "api-key", "", "API key (client)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			APIKeyHash:   apiKeyHash,
		},
		Storage: Storage{
			DB: DB{
				Driver:  driver,
				DSN:     databaseDSN,
				Migrate: migrate,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Blueprints: Blueprints{
			Prefix:    prefix,
			Pluralize: pluralize,
		},
		BlueprintUtils: BlueprintUtils{
			Policy: policy,
		},
		Models: Models{
			Dir: modelsDir,
		},
		Client: Client{
			BaseURL:        baseURL,
			Prefix:         prefix,
			Token:          token,
			APIKey:         apiKey,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
