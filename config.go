package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/ttpr0/go-multiroute/routing"
	"golang.org/x/exp/slog"
	"gopkg.in/yaml.v3"
)

//**********************************************************
// config
//**********************************************************

type Config struct {
	Server  ServerOptions  `yaml:"server"`
	Graph   GraphOptions   `yaml:"graph"`
	Routing RoutingOptions `yaml:"routing"`
	Logging struct {
		Level string `yaml:"level"`
	} `yaml:"logging"`
}

type ServerOptions struct {
	Addr        string   `yaml:"addr"`
	CorsOrigins []string `yaml:"cors-origins"`
}

type GraphOptions struct {
	Source      GraphSource `yaml:"source"`
	Path        string      `yaml:"path"`
	Place       string      `yaml:"place"`
	OverpassURL string      `yaml:"overpass-url"`
	PostgresURL string      `yaml:"postgres-url"`
	NodesTable  string      `yaml:"nodes-table"`
	EdgesTable  string      `yaml:"edges-table"`
	// csv delimiter
	Delimiter string `yaml:"delimiter"`
}

type RoutingOptions struct {
	Radius       float64 `yaml:"radius"`
	K            int     `yaml:"k"`
	MaxK         int     `yaml:"max-k"`
	DefaultSpeed float64 `yaml:"default-speed"`
}

func (self RoutingOptions) RouterOptions() routing.Options {
	return routing.Options{
		RadiusMeters:    self.Radius,
		DefaultK:        self.K,
		MaxK:            self.MaxK,
		DefaultSpeedKph: self.DefaultSpeed,
	}
}

func DefaultConfig() Config {
	def := routing.DefaultOptions()
	config := Config{
		Server: ServerOptions{
			Addr:        ":5000",
			CorsOrigins: []string{"*"},
		},
		Graph: GraphOptions{
			Source:     GRAPHML,
			Path:       "./data/network.graphml",
			NodesTable: "nodes",
			EdgesTable: "edges",
			Delimiter:  ",",
		},
		Routing: RoutingOptions{
			Radius:       def.RadiusMeters,
			K:            def.DefaultK,
			MaxK:         def.MaxK,
			DefaultSpeed: def.DefaultSpeedKph,
		},
	}
	config.Logging.Level = "info"
	return config
}

// Reads a yaml config on top of the defaults.
//
// A missing file is not an error; the defaults are used instead.
func ReadConfig(file string) (Config, error) {
	config := DefaultConfig()
	slog.Info("Reading config file", "file", file)
	data, err := os.ReadFile(file)
	if errors.Is(err, os.ErrNotExist) {
		slog.Warn("config file not found, using defaults", "file", file)
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// Loads .env into the process environment if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using process environment")
	}
}

// Config file path from ROUTING_CONFIG, defaulting to ./config.yaml.
func ConfigPath() string {
	if v, ok := os.LookupEnv("ROUTING_CONFIG"); ok && v != "" {
		return v
	}
	return "./config.yaml"
}

// Applies ROUTING_* overrides.
func ApplyEnv(config *Config) error {
	if v, ok := os.LookupEnv("ROUTING_ADDR"); ok {
		config.Server.Addr = v
	}
	if v, ok := os.LookupEnv("ROUTING_GRAPH_SOURCE"); ok {
		source, err := GraphSourceFromString(v)
		if err != nil {
			return err
		}
		config.Graph.Source = source
	}
	if v, ok := os.LookupEnv("ROUTING_GRAPH_PATH"); ok {
		config.Graph.Path = v
	}
	if v, ok := os.LookupEnv("ROUTING_GRAPH_PLACE"); ok {
		config.Graph.Place = v
	}
	if v, ok := os.LookupEnv("ROUTING_POSTGRES_URL"); ok {
		config.Graph.PostgresURL = v
	}
	if v, ok := os.LookupEnv("ROUTING_LOG_LEVEL"); ok {
		config.Logging.Level = v
	}
	return nil
}

func (self Config) Validate() error {
	switch self.Graph.Source {
	case OSM_PBF, GRAPHML, NODE_LINK, CSV:
		if self.Graph.Path == "" {
			return fmt.Errorf("graph source %v needs graph.path", self.Graph.Source)
		}
	case OVERPASS:
		if strings.TrimSpace(self.Graph.Place) == "" {
			return fmt.Errorf("graph source %v needs graph.place", self.Graph.Source)
		}
	case POSTGRES:
		if self.Graph.PostgresURL == "" {
			return fmt.Errorf("graph source %v needs graph.postgres-url", self.Graph.Source)
		}
	}
	if len([]rune(self.Graph.Delimiter)) != 1 {
		return fmt.Errorf("graph.delimiter must be a single character")
	}
	if self.Routing.Radius < 0 || self.Routing.K < 0 || self.Routing.MaxK < 0 || self.Routing.DefaultSpeed < 0 {
		return fmt.Errorf("routing options must not be negative")
	}
	return nil
}

//**********************************************************
// enums
//**********************************************************

type GraphSource byte

const (
	GRAPHML   GraphSource = 0
	NODE_LINK GraphSource = 1
	CSV       GraphSource = 2
	OSM_PBF   GraphSource = 3
	OVERPASS  GraphSource = 4
	POSTGRES  GraphSource = 5
)

var graph_source_names = map[GraphSource]string{
	GRAPHML:   "graphml",
	NODE_LINK: "node-link",
	CSV:       "csv",
	OSM_PBF:   "pbf",
	OVERPASS:  "overpass",
	POSTGRES:  "postgres",
}

func (self GraphSource) String() string {
	return graph_source_names[self]
}

func GraphSourceFromString(s string) (GraphSource, error) {
	for typ, name := range graph_source_names {
		if name == strings.ToLower(strings.TrimSpace(s)) {
			return typ, nil
		}
	}
	return GRAPHML, fmt.Errorf("unknown graph source %q", s)
}

func (self *GraphSource) UnmarshalYAML(value *yaml.Node) error {
	typ, err := GraphSourceFromString(value.Value)
	if err != nil {
		return err
	}
	*self = typ
	return nil
}
