package repository

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Dias221467/Alumni_Connect/internal/models"
)

// AlumniRepository reads the alumni directory.
type AlumniRepository struct {
	client *Client
}

func NewAlumniRepository(client *Client) *AlumniRepository {
	return &AlumniRepository{client: client}
}

// Search returns the full directory snapshot.
func (r *AlumniRepository) Search(ctx context.Context) ([]models.AlumniProfile, error) {
	data, err := r.client.do(ctx, "search_alumni", http.MethodGet, "/alumni/profile/search", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to search alumni: %w", err)
	}
	return decodeList[models.AlumniProfile]("search_alumni", data)
}
