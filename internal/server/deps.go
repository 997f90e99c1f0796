package server

import (
	"fmt"
	"log"

	"rvconsign/internal/config"
	"rvconsign/internal/hubspot"
	"rvconsign/internal/notify"
	"rvconsign/internal/storage"
)

// Deps are the outside-world adapters the router is built on.
type Deps struct {
	Notifier notify.Notifier
	Storage  storage.Storage
	HubSpot  *hubspot.Client
	Stages   *hubspot.StageMap
}

// NewDeps picks the adapters the configuration asks for.
func NewDeps(cfg *config.Config) (Deps, error) {
	var d Deps

	if cfg.Mail.SendGridAPIKey != "" {
		d.Notifier = notify.NewSendGrid(cfg.Mail.SendGridAPIKey, cfg.Mail.FromEmail, cfg.Mail.FromName)
	} else {
		log.Println("SENDGRID_API_KEY not set, emails are logged only")
		d.Notifier = notify.LogNotifier{}
	}

	switch cfg.Storage.Backend {
	case config.StorageCloudinary:
		c, err := storage.NewCloudinary(cfg.Storage.CloudinaryURL, cfg.Storage.CloudinaryFolder)
		if err != nil {
			return d, fmt.Errorf("cloudinary: %w", err)
		}
		d.Storage = c
	default:
		d.Storage = storage.NewLocal(cfg.Storage.UploadsDir, cfg.Storage.UploadsURLBase)
	}

	d.HubSpot = hubspot.New(hubspot.Config{
		AccessToken: cfg.HubSpot.AccessToken,
		BaseURL:     cfg.HubSpot.BaseURL,
		Timeout:     cfg.HubSpot.Timeout,
	})
	d.Stages = hubspot.DefaultStageMap()
	if cfg.HubSpot.StageMapFile != "" {
		m, err := hubspot.LoadStageMap(cfg.HubSpot.StageMapFile)
		if err != nil {
			return d, err
		}
		d.Stages = m
	}
	return d, nil
}
