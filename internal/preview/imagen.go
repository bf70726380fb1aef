package preview

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"google.golang.org/api/option"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/shivansh-2003/color-UI/internal/palette"
)

// VertexImagen renders mockups through Vertex AI Imagen. It is an
// alternative to GeminiRenderer for deployments with a GCP project.
type VertexImagen struct {
	projectID          string
	location           string
	model              string
	apiKey             string
	serviceAccount     string
	serviceAccountJSON string
}

// VertexImagenConfig describes how to connect to Imagen.
type VertexImagenConfig struct {
	ProjectID          string
	Location           string
	Model              string
	APIKey             string
	ServiceAccount     string
	ServiceAccountJSON string
}

// NewVertexImagen wires a VertexImagen renderer.
func NewVertexImagen(cfg VertexImagenConfig) *VertexImagen {
	return &VertexImagen{
		projectID:          strings.TrimSpace(cfg.ProjectID),
		location:           strings.TrimSpace(cfg.Location),
		model:              strings.TrimSpace(cfg.Model),
		apiKey:             strings.TrimSpace(cfg.APIKey),
		serviceAccount:     strings.TrimSpace(cfg.ServiceAccount),
		serviceAccountJSON: strings.TrimSpace(cfg.ServiceAccountJSON),
	}
}

// Render runs an Imagen generation request for the palette mockup.
func (v *VertexImagen) Render(ctx context.Context, p palette.Organized, template Template) (Preview, error) {
	if v == nil {
		return Preview{}, fmt.Errorf("imagen: renderer not configured")
	}
	if v.projectID == "" || v.location == "" || v.model == "" {
		return Preview{}, fmt.Errorf("imagen: missing project/location/model")
	}

	instance, err := structpb.NewValue(map[string]any{
		"prompt": mockupPrompt(p, template),
	})
	if err != nil {
		return Preview{}, err
	}
	params, err := structpb.NewValue(map[string]any{
		"sampleCount": 1,
	})
	if err != nil {
		return Preview{}, err
	}

	endpoint := fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s", v.projectID, v.location, v.model)
	options := []option.ClientOption{option.WithEndpoint(fmt.Sprintf("%s-aiplatform.googleapis.com:443", v.location))}
	if v.serviceAccountJSON != "" {
		options = append(options, option.WithCredentialsJSON([]byte(v.serviceAccountJSON)))
	} else if v.serviceAccount != "" {
		options = append(options, option.WithCredentialsFile(v.serviceAccount))
	} else if v.apiKey != "" {
		options = append(options, option.WithAPIKey(v.apiKey))
	}

	client, err := aiplatform.NewPredictionClient(ctx, options...)
	if err != nil {
		return Preview{}, fmt.Errorf("imagen: prediction client: %w", err)
	}
	defer client.Close()

	resp, err := client.Predict(ctx, &aiplatformpb.PredictRequest{
		Endpoint:   endpoint,
		Instances:  []*structpb.Value{instance},
		Parameters: params,
	})
	if err != nil {
		return Preview{}, fmt.Errorf("imagen: predict: %w", err)
	}
	if len(resp.Predictions) == 0 {
		return Preview{}, fmt.Errorf("imagen: empty prediction response")
	}

	fields := resp.Predictions[0].GetStructValue().GetFields()
	field := fields["bytesBase64Encoded"]
	if field == nil {
		return Preview{}, fmt.Errorf("imagen: prediction missing bytes")
	}
	encoded := field.GetStringValue()
	if _, err := base64.StdEncoding.DecodeString(encoded); err != nil {
		return Preview{}, fmt.Errorf("imagen: decode result: %w", err)
	}

	mime := "image/png"
	if m := fields["mimeType"]; m != nil && m.GetStringValue() != "" {
		mime = m.GetStringValue()
	}
	return Preview{ImageData: encoded, MIMEType: mime}, nil
}
