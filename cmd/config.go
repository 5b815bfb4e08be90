package cmd

type Config struct {
	HTTPPort                string
	DBHost                  string
	DBPort                  string
	DBUser                  string
	DBPassword              string
	DBName                  string
	DBSslMode               string
	SettlementBaseURL       string
	PaymentBaseURL          string
	ExportDir               string
	KafkaHost               string
	KafkaNotificationsTopic string
}
