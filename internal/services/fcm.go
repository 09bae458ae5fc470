package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"strconv"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"

	"waste-management-backend/internal/models"
	"waste-management-backend/pkg/utils"
)

// messageSender is the part of *messaging.Client the service uses
type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMService handles Firebase Cloud Messaging
type FCMService struct {
	client messageSender
}

// NewFCMService creates a new FCM service instance from a credentials file
func NewFCMService(credentialsFile string) (*FCMService, error) {
	return newFCMService(option.WithCredentialsFile(credentialsFile))
}

// NewFCMServiceFromBase64 creates a new FCM service instance from base64-encoded credentials
func NewFCMServiceFromBase64(credentialsBase64 string) (*FCMService, error) {
	credentialsJSON, err := base64.StdEncoding.DecodeString(credentialsBase64)
	if err != nil {
		return nil, fmt.Errorf("error decoding base64 credentials: %w", err)
	}
	return newFCMService(option.WithCredentialsJSON(credentialsJSON))
}

func newFCMService(opt option.ClientOption) (*FCMService, error) {
	ctx := context.Background()

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing Firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %w", err)
	}

	return &FCMService{client: client}, nil
}

// NewFCMServiceFromConfig picks base64 credentials over a file. It returns
// nil without error when neither is configured.
func NewFCMServiceFromConfig(credentialsBase64, credentialsFile string) (*FCMService, error) {
	switch {
	case credentialsBase64 != "":
		return NewFCMServiceFromBase64(credentialsBase64)
	case credentialsFile != "":
		return NewFCMService(credentialsFile)
	}
	return nil, nil
}

// BinAlertTopic is the topic crews of an area subscribe to
func BinAlertTopic(areaID int64) string {
	return fmt.Sprintf("area-%d-bins", areaID)
}

// BinFullMessage builds the push for a bin that needs emptying
func BinFullMessage(bin models.Bin) *messaging.Message {
	return &messaging.Message{
		Topic: BinAlertTopic(bin.AreaID),
		Notification: &messaging.Notification{
			Title: "Bin needs collection",
			Body:  fmt.Sprintf("Bin #%d is %.0f%% full.", bin.BinID, bin.FillLevel),
		},
		Data: map[string]string{
			"type":       "bin_full",
			"bin_id":     strconv.FormatInt(bin.BinID, 10),
			"area_id":    strconv.FormatInt(bin.AreaID, 10),
			"fill_level": strconv.FormatFloat(bin.FillLevel, 'f', -1, 64),
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					ContentAvailable: true,
					Sound:            "default",
				},
			},
		},
	}
}

// SendBinFullAlert notifies the bin's area topic
func (s *FCMService) SendBinFullAlert(ctx context.Context, bin models.Bin) error {
	response, err := s.client.Send(ctx, BinFullMessage(bin))
	if err != nil {
		return fmt.Errorf("error sending FCM message: %w", err)
	}

	utils.Logger.Infof("✅ FCM notification sent successfully: %s", response)
	return nil
}
