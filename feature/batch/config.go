package batch

// Config holds configuration for the batch pipeline.
type Config struct {
	// BasePath is the directory whose sub-folders are independent batches.
	BasePath string `mapstructure:"base_path" default:"./task_data"`
	// EURUSDRate is the fixed EUR to USD conversion rate applied during
	// price normalization.
	EURUSDRate float64 `mapstructure:"eur_usd_rate" default:"1.2"`
	// TopDays is how many highest-revenue days the summary lists.
	TopDays int `mapstructure:"top_days" default:"5"`
	// Workers bounds how many folders are processed concurrently.
	Workers int `mapstructure:"workers" default:"4"`
	// PublishReports uploads per-folder outputs to object storage when true.
	PublishReports bool `mapstructure:"publish_reports" default:"false"`
}

// Input and output file names inside each batch folder.
const (
	OrdersFile  = "orders.parquet"
	UsersFile   = "users.csv"
	BooksFile   = "books.yaml"
	DailyFile   = "daily_revenue.csv"
	SummaryFile = "summary.csv"
)
