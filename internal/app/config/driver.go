package config

type (
	DriverConfig struct {
		Postgres Postgres
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
		Supabase Supabase
	}
	Postgres struct {
		Host                     string
		Port                     string
		DbName                   string
		Username                 string
		Password                 string
		SSLMode                  string
		MaxOpenConns             int
		MaxIdleConns             int
		ConnMaxLifetimeInMinutes int
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
		DB       int
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
	// Supabase holds the hosted auth service connection. JWTSecret is
	// optional and enables local token verification.
	Supabase struct {
		URL            string
		AnonKey        string
		ServiceRoleKey string
		JWTSecret      string
	}
)
