package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		BaseURL string        `yaml:"base_url" json:"base_url" jsonschema:"default=http://localhost:8080,description=Base URL for generated links"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"default=file:product-browser.db?cache=shared&mode=rwc,description=Database connection string"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	Schedule struct {
		ScrapeInterval    time.Duration `yaml:"scrape_interval" json:"scrape_interval" jsonschema:"default=1h,description=Interval between scrape passes"`
		AnnotateInterval  time.Duration `yaml:"annotate_interval" json:"annotate_interval" jsonschema:"default=10m,description=Interval between annotation passes"`
		DetectInterval    time.Duration `yaml:"detect_interval" json:"detect_interval" jsonschema:"default=30m,description=Interval between detection passes"`
		SourceConcurrency int           `yaml:"source_concurrency" json:"source_concurrency" jsonschema:"default=4,description=Maximum sources fetched concurrently"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Scheduler configuration"`

	Sources    SourcesConfig    `yaml:"sources" json:"sources" jsonschema:"description=Content source configuration"`
	Extraction ExtractionConfig `yaml:"extraction" json:"extraction" jsonschema:"description=Link-post content extraction configuration"`
	LLM        LLMConfig        `yaml:"llm" json:"llm" jsonschema:"description=LLM configuration for post annotation"`
	Trends     TrendsConfig     `yaml:"trends" json:"trends" jsonschema:"description=Search volume provider configuration"`
	Detect     DetectConfig     `yaml:"detect" json:"detect" jsonschema:"description=Opportunity detection engine configuration"`
}

// RedditConfig holds Reddit listing source settings
type RedditConfig struct {
	Enabled    bool     `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable the Reddit source"`
	Subreddits []string `yaml:"subreddits" json:"subreddits" jsonschema:"description=Subreddits to scrape"`
	Listing    string   `yaml:"listing" json:"listing" jsonschema:"default=top,description=Listing to fetch (hot, new or top)"`
	TimeRange  string   `yaml:"time_range" json:"time_range" jsonschema:"default=week,description=Time range for top listings (hour, day, week, month, year, all)"`
	Limit      int      `yaml:"limit" json:"limit" jsonschema:"default=100,maximum=100,description=Posts per subreddit per pass"`
	MinUpvotes int      `yaml:"min_upvotes" json:"min_upvotes" jsonschema:"default=10,description=Drop posts below this upvote count"`
}

// FeedsConfig holds the RSS/Atom source settings
type FeedsConfig struct {
	Enabled bool     `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable the feed source"`
	URLs    []string `yaml:"urls" json:"urls" jsonschema:"description=Feed URLs to scrape"`
}

// TwitterConfig holds the Twitter recent-search source settings
type TwitterConfig struct {
	Enabled     bool     `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Enable the Twitter source"`
	BearerToken string   `yaml:"bearer_token" json:"bearer_token" jsonschema:"description=API v2 bearer token (can use environment variable)"`
	Queries     []string `yaml:"queries" json:"queries" jsonschema:"description=Search queries to run"`
	MaxResults  int      `yaml:"max_results" json:"max_results" jsonschema:"default=50,minimum=10,maximum=100,description=Results per query per pass"`
}

// SourcesConfig groups all content sources
type SourcesConfig struct {
	UserAgent      string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=product-browser/1.0,description=User agent for source requests"`
	Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=HTTP timeout per source request"`
	SignalPatterns []string      `yaml:"signal_patterns" json:"signal_patterns" jsonschema:"description=Pain-signal phrases recorded on matching posts (defaults applied when empty)"`
	Reddit         RedditConfig  `yaml:"reddit" json:"reddit" jsonschema:"description=Reddit source"`
	Feeds          FeedsConfig   `yaml:"feeds" json:"feeds" jsonschema:"description=RSS/Atom feed source"`
	Twitter        TwitterConfig `yaml:"twitter" json:"twitter" jsonschema:"description=Twitter source"`
}

// ExtractionConfig holds settings for extracting text from link-only posts
type ExtractionConfig struct {
	Enabled       bool          `yaml:"enabled" json:"enabled" jsonschema:"default=false,description=Fetch and extract linked pages for posts without body text"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=Extraction timeout per post"`
	MinTextLength int           `yaml:"min_text_length" json:"min_text_length" jsonschema:"default=100,description=Minimum extracted text length to keep"`
	UserAgent     string        `yaml:"user_agent" json:"user_agent" jsonschema:"default=product-browser/1.0,description=User agent for extraction requests"`
}

// LLMConfig holds LLM configuration for post annotation
type LLMConfig struct {
	Endpoint      string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=OpenAI-compatible API endpoint (empty for api.openai.com)"`
	APIKey        string        `yaml:"api_key" json:"api_key" jsonschema:"description=API key (can use environment variable)"`
	Model         string        `yaml:"model" json:"model" jsonschema:"default=gpt-4o-mini,description=Model name"`
	Temperature   float64       `yaml:"temperature" json:"temperature" jsonschema:"default=0.3,description=Temperature for response generation"`
	MaxTokens     int           `yaml:"max_tokens" json:"max_tokens" jsonschema:"default=2000,description=Maximum tokens in response"`
	Timeout       time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=60s,description=Request timeout"`
	BatchSize     int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=10,minimum=1,description=Posts annotated in one request"`
	Retries       int           `yaml:"retries" json:"retries" jsonschema:"default=3,minimum=1,description=Attempts per batch before giving up"`
	MinSeverity   float64       `yaml:"min_severity" json:"min_severity" jsonschema:"default=5,minimum=1,maximum=10,description=Discard annotations below this pain severity"`
	MinConfidence int           `yaml:"min_confidence" json:"min_confidence" jsonschema:"default=30,minimum=0,maximum=100,description=Discard annotations below this annotator confidence"`
	SystemPrompt  string        `yaml:"system_prompt" json:"system_prompt" jsonschema:"description=System prompt override (optional)"`
}

// TrendsConfig holds the external search-volume provider settings
type TrendsConfig struct {
	Endpoint string        `yaml:"endpoint" json:"endpoint" jsonschema:"description=Trends proxy base URL (empty disables the provider)"`
	Timeout  time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Request timeout"`
	CacheTTL time.Duration `yaml:"cache_ttl" json:"cache_ttl" jsonschema:"default=1h,description=Per-keyword cache lifetime"`
}

// ClusterConfig holds similarity clustering settings
type ClusterConfig struct {
	Strategy       string  `yaml:"strategy" json:"strategy" jsonschema:"default=auto,description=Clustering strategy (auto, density or keywords)"`
	MinClusterSize int     `yaml:"min_cluster_size" json:"min_cluster_size" jsonschema:"default=3,minimum=1,description=Minimum posts per cluster"`
	Epsilon        float64 `yaml:"epsilon" json:"epsilon" jsonschema:"default=0.7,description=Cosine-distance neighborhood radius for density clustering"`
}

// LexiconConfig holds the fixed phrase lists the scorers match against.
// Empty lists fall back to the built-in defaults; the defaults are part of
// the scoring policy and changing them changes score comparability.
type LexiconConfig struct {
	HighIntensity   []string `yaml:"high_intensity" json:"high_intensity" jsonschema:"description=High emotion-intensity phrases"`
	MediumIntensity []string `yaml:"medium_intensity" json:"medium_intensity" jsonschema:"description=Medium emotion-intensity phrases"`
	LowIntensity    []string `yaml:"low_intensity" json:"low_intensity" jsonschema:"description=Low emotion-intensity phrases"`
	PaymentIntent   []string `yaml:"payment_intent" json:"payment_intent" jsonschema:"description=Willingness-to-pay phrases"`
	DIYSignals      []string `yaml:"diy_signals" json:"diy_signals" jsonschema:"description=DIY/workaround phrases"`
	Stopwords       []string `yaml:"stopwords" json:"stopwords" jsonschema:"description=Stopwords for tokenization and keyword extraction"`
	GenericTerms    []string `yaml:"generic_terms" json:"generic_terms" jsonschema:"description=Generic terms dropped from generated titles"`
}

// DetectConfig holds the opportunity detection engine settings
type DetectConfig struct {
	BatchSize           int           `yaml:"batch_size" json:"batch_size" jsonschema:"default=500,minimum=1,description=Unprocessed posts consumed per detection pass"`
	WindowDays          int           `yaml:"window_days" json:"window_days" jsonschema:"default=7,minimum=1,description=Recency window for clustering input in days"`
	LookbackDays        int           `yaml:"lookback_days" json:"lookback_days" jsonschema:"default=90,minimum=7,description=Growth classification lookback in days"`
	ConfidenceThreshold int           `yaml:"confidence_threshold" json:"confidence_threshold" jsonschema:"default=60,minimum=0,maximum=100,description=Minimum confidence score to persist an opportunity"`
	Cluster             ClusterConfig `yaml:"cluster" json:"cluster" jsonschema:"description=Similarity clustering settings"`
	Lexicon             LexiconConfig `yaml:"lexicon" json:"lexicon" jsonschema:"description=Scoring phrase lists"`
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	// expand environment variables
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

// applyDefaults fills zero values with the documented defaults
func (c *Config) applyDefaults() {
	// server
	if c.Server.Listen == "" {
		c.Server.Listen = ":8080"
	}
	if c.Server.BaseURL == "" {
		c.Server.BaseURL = "http://localhost:8080"
	}
	if c.Server.Timeout == 0 {
		c.Server.Timeout = 30 * time.Second
	}

	// database
	if c.Database.DSN == "" {
		c.Database.DSN = "file:product-browser.db?cache=shared&mode=rwc&_txlock=immediate"
	}
	if c.Database.MaxOpenConns == 0 {
		c.Database.MaxOpenConns = 10
	}
	if c.Database.MaxIdleConns == 0 {
		c.Database.MaxIdleConns = 5
	}
	if c.Database.ConnMaxLifetime == 0 {
		c.Database.ConnMaxLifetime = 3600
	}

	// schedule
	if c.Schedule.ScrapeInterval == 0 {
		c.Schedule.ScrapeInterval = time.Hour
	}
	if c.Schedule.AnnotateInterval == 0 {
		c.Schedule.AnnotateInterval = 10 * time.Minute
	}
	if c.Schedule.DetectInterval == 0 {
		c.Schedule.DetectInterval = 30 * time.Minute
	}
	if c.Schedule.SourceConcurrency == 0 {
		c.Schedule.SourceConcurrency = 4
	}

	// sources
	if c.Sources.UserAgent == "" {
		c.Sources.UserAgent = "product-browser/1.0"
	}
	if c.Sources.Timeout == 0 {
		c.Sources.Timeout = 15 * time.Second
	}
	if len(c.Sources.SignalPatterns) == 0 {
		c.Sources.SignalPatterns = DefaultSignalPatterns()
	}
	if c.Sources.Reddit.Listing == "" {
		c.Sources.Reddit.Listing = "top"
	}
	if c.Sources.Reddit.TimeRange == "" {
		c.Sources.Reddit.TimeRange = "week"
	}
	if c.Sources.Reddit.Limit == 0 {
		c.Sources.Reddit.Limit = 100
	}
	if c.Sources.Reddit.MinUpvotes == 0 {
		c.Sources.Reddit.MinUpvotes = 10
	}
	if c.Sources.Twitter.MaxResults == 0 {
		c.Sources.Twitter.MaxResults = 50
	}

	// extraction
	if c.Extraction.Timeout == 0 {
		c.Extraction.Timeout = 30 * time.Second
	}
	if c.Extraction.MinTextLength == 0 {
		c.Extraction.MinTextLength = 100
	}
	if c.Extraction.UserAgent == "" {
		c.Extraction.UserAgent = c.Sources.UserAgent
	}

	// llm
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.LLM.Temperature == 0 {
		c.LLM.Temperature = 0.3
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 2000
	}
	if c.LLM.Timeout == 0 {
		c.LLM.Timeout = 60 * time.Second
	}
	if c.LLM.BatchSize == 0 {
		c.LLM.BatchSize = 10
	}
	if c.LLM.Retries == 0 {
		c.LLM.Retries = 3
	}
	if c.LLM.MinSeverity == 0 {
		c.LLM.MinSeverity = 5
	}
	if c.LLM.MinConfidence == 0 {
		c.LLM.MinConfidence = 30
	}

	// trends
	if c.Trends.Timeout == 0 {
		c.Trends.Timeout = 15 * time.Second
	}
	if c.Trends.CacheTTL == 0 {
		c.Trends.CacheTTL = time.Hour
	}

	// detect
	if c.Detect.BatchSize == 0 {
		c.Detect.BatchSize = 500
	}
	if c.Detect.WindowDays == 0 {
		c.Detect.WindowDays = 7
	}
	if c.Detect.LookbackDays == 0 {
		c.Detect.LookbackDays = 90
	}
	if c.Detect.ConfidenceThreshold == 0 {
		c.Detect.ConfidenceThreshold = 60
	}
	if c.Detect.Cluster.Strategy == "" {
		c.Detect.Cluster.Strategy = "auto"
	}
	if c.Detect.Cluster.MinClusterSize == 0 {
		c.Detect.Cluster.MinClusterSize = 3
	}
	if c.Detect.Cluster.Epsilon == 0 {
		c.Detect.Cluster.Epsilon = 0.7
	}
	c.Detect.Lexicon.applyDefaults()
}

func (l *LexiconConfig) applyDefaults() {
	if len(l.HighIntensity) == 0 {
		l.HighIntensity = DefaultHighIntensity()
	}
	if len(l.MediumIntensity) == 0 {
		l.MediumIntensity = DefaultMediumIntensity()
	}
	if len(l.LowIntensity) == 0 {
		l.LowIntensity = DefaultLowIntensity()
	}
	if len(l.PaymentIntent) == 0 {
		l.PaymentIntent = DefaultPaymentIntent()
	}
	if len(l.DIYSignals) == 0 {
		l.DIYSignals = DefaultDIYSignals()
	}
	if len(l.Stopwords) == 0 {
		l.Stopwords = DefaultStopwords()
	}
	if len(l.GenericTerms) == 0 {
		l.GenericTerms = DefaultGenericTerms()
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	// server
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}

	// sources
	switch cfg.Sources.Reddit.Listing {
	case "hot", "new", "top":
	default:
		return fmt.Errorf("sources.reddit.listing must be hot, new or top")
	}
	if cfg.Sources.Reddit.Enabled && len(cfg.Sources.Reddit.Subreddits) == 0 {
		return fmt.Errorf("sources.reddit.subreddits is required when the reddit source is enabled")
	}
	if cfg.Sources.Feeds.Enabled && len(cfg.Sources.Feeds.URLs) == 0 {
		return fmt.Errorf("sources.feeds.urls is required when the feed source is enabled")
	}
	if cfg.Sources.Twitter.Enabled {
		if cfg.Sources.Twitter.BearerToken == "" {
			return fmt.Errorf("sources.twitter.bearer_token is required when the twitter source is enabled")
		}
		if len(cfg.Sources.Twitter.Queries) == 0 {
			return fmt.Errorf("sources.twitter.queries is required when the twitter source is enabled")
		}
	}

	// llm
	if cfg.LLM.Temperature < 0 || cfg.LLM.Temperature > 2 {
		return fmt.Errorf("llm.temperature must be between 0 and 2")
	}
	if cfg.LLM.BatchSize < 1 {
		return fmt.Errorf("llm.batch_size must be at least 1")
	}
	if cfg.LLM.MinSeverity < 1 || cfg.LLM.MinSeverity > 10 {
		return fmt.Errorf("llm.min_severity must be between 1 and 10")
	}
	if cfg.LLM.MinConfidence < 0 || cfg.LLM.MinConfidence > 100 {
		return fmt.Errorf("llm.min_confidence must be between 0 and 100")
	}

	// detect
	if cfg.Detect.ConfidenceThreshold < 0 || cfg.Detect.ConfidenceThreshold > 100 {
		return fmt.Errorf("detect.confidence_threshold must be between 0 and 100")
	}
	if cfg.Detect.Cluster.MinClusterSize < 1 {
		return fmt.Errorf("detect.cluster.min_cluster_size must be at least 1")
	}
	if cfg.Detect.Cluster.Epsilon <= 0 || cfg.Detect.Cluster.Epsilon >= 1 {
		return fmt.Errorf("detect.cluster.epsilon must be between 0 and 1 exclusive")
	}
	switch cfg.Detect.Cluster.Strategy {
	case "auto", "density", "keywords":
	default:
		return fmt.Errorf("detect.cluster.strategy must be auto, density or keywords")
	}

	// extraction
	if cfg.Extraction.Enabled && cfg.Extraction.Timeout < time.Second {
		return fmt.Errorf("extraction timeout must be at least 1 second")
	}

	return nil
}
