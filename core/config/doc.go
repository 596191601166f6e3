// Package config provides configuration management for todo-sync.
//
// Values come from environment variables, optionally seeded from a .env file. Defaults
// are declared on each section's struct with `default` tags and registered with Viper by
// reflection, which also makes every key visible to AutomaticEnv.
//
// # Configuration Structure
//
//   - Server: port, stage, CORS origins
//   - Store: record backend (database, redis) and table name
//   - Database / Redis: backend connection details
//   - Storage / Secrets: where the shared API key is kept
//   - Airtable: mirror credentials and field names
//   - Log: level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.TableName())
package config
