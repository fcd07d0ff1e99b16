// Package config provides local-first configuration for showcase.
//
// Configuration lives in a single JSON file inside the project's .showcase/
// directory:
//
//	.showcase/
//	├── config.json        # Main configuration (committed to git)
//	└── .gitignore         # Ignores logs and temporary files
//
// The config.json file contains simple key-value settings:
//
//	{
//	  "theme": "showcase",
//	  "log_level": "info",
//	  "log_file": "showcase.log",
//	  "strict_host": false,
//	  "loading_duration_ms": 3000,
//	  "loading_settle_ms": 1500,
//	  "loading_success_rate": 0.7,
//	  "api_addr": ":4000",
//	  "page_size": 10
//	}
//
// String values can reference environment variables using $VAR or ${VAR}:
//
//	{
//	  "api_addr": "${SHOWCASE_ADDR}",
//	  "log_file": "$HOME/showcase.log"
//	}
//
// Command line flags override whatever the file says.
//
// Example usage:
//
//	manager := config.NewManager(filepath.Join(projectDir, config.DirName))
//	if err := manager.Load(); err != nil {
//		log.Fatal(err)
//	}
//
//	cfg := manager.Get()
//	fmt.Println("API address:", cfg.APIAddr)
package config
