package main

import (
	"flag"
	"os"
	"time"

	"github.com/wurt83ow/docusign-skill/internal/docusign"
)

var (
	flagRunAddr     string
	flagLogLevel    string
	flagDatabaseURI string

	flagDocuSignURL      string
	flagDocuSignUser     string
	flagDocuSignPassword string
	flagIntegratorKey    string
	flagTemplateID       string
	flagTemplateRole     string
	flagDocuSignTimeout  time.Duration
)

func parseFlags() {
	flag.StringVar(&flagRunAddr, "a", ":8080", "address and port to run server")
	flag.StringVar(&flagLogLevel, "l", "info", "log level")
	flag.StringVar(&flagDatabaseURI, "d", "", "recipients database URI, in-memory directory if empty")

	flag.StringVar(&flagDocuSignURL, "docusign-url", docusign.DefaultBaseURL, "DocuSign REST API base URL")
	flag.StringVar(&flagDocuSignUser, "docusign-user", "", "DocuSign account email")
	flag.StringVar(&flagDocuSignPassword, "docusign-password", "", "DocuSign account password")
	flag.StringVar(&flagIntegratorKey, "docusign-key", "", "DocuSign integrator key")
	flag.StringVar(&flagTemplateID, "template", "", "DocuSign template ID")
	flag.StringVar(&flagTemplateRole, "role", "", "template role bound to the signer")
	flag.DurationVar(&flagDocuSignTimeout, "docusign-timeout", 30*time.Second, "DocuSign request timeout")
	flag.Parse()

	if envRunAddr := os.Getenv("RUN_ADDR"); envRunAddr != "" {
		flagRunAddr = envRunAddr
	}
	if envLogLevel := os.Getenv("LOG_LEVEL"); envLogLevel != "" {
		flagLogLevel = envLogLevel
	}
	if envDatabaseURI := os.Getenv("DATABASE_URI"); envDatabaseURI != "" {
		flagDatabaseURI = envDatabaseURI
	}

	// учётные данные DocuSign удобнее передавать через окружение, а не аргументы
	if v := os.Getenv("DOCUSIGN_BASE_URL"); v != "" {
		flagDocuSignURL = v
	}
	if v := os.Getenv("DOCUSIGN_USERNAME"); v != "" {
		flagDocuSignUser = v
	}
	if v := os.Getenv("DOCUSIGN_PASSWORD"); v != "" {
		flagDocuSignPassword = v
	}
	if v := os.Getenv("DOCUSIGN_INTEGRATOR_KEY"); v != "" {
		flagIntegratorKey = v
	}
	if v := os.Getenv("DOCUSIGN_TEMPLATE_ID"); v != "" {
		flagTemplateID = v
	}
	if v := os.Getenv("DOCUSIGN_ROLE_NAME"); v != "" {
		flagTemplateRole = v
	}
	if v := os.Getenv("DOCUSIGN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			flagDocuSignTimeout = d
		}
	}
}
