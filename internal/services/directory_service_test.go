package services

import (
	"context"
	"testing"

	"github.com/Dias221467/Alumni_Connect/internal/models"
	"github.com/Dias221467/Alumni_Connect/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func profile(userID int64, name, company, designation, expertise string) models.AlumniProfile {
	return models.AlumniProfile{
		ID:          userID * 10,
		User:        models.UserSummary{ID: userID, Name: name},
		CompanyName: company,
		Designation: designation,
		Expertise:   expertise,
	}
}

func newDirectory(t *testing.T, profiles []models.AlumniProfile, requests ...models.MentorshipRequest) *DirectoryService {
	t.Helper()
	st := store.NewRequestStore(store.Sent)
	for _, r := range requests {
		st.Append(r)
	}
	svc := NewDirectoryService(&fakeDirectoryRemote{profiles: profiles}, st, student)
	require.NoError(t, svc.Load(context.Background()))
	return svc
}

// Scenario D
func TestUnconnectedAlumnusHasNilStatus(t *testing.T) {
	svc := newDirectory(t, []models.AlumniProfile{profile(5, "Ada", "Acme", "Engineer", "")})

	assert.Nil(t, svc.StatusFor(5))
	assert.True(t, svc.CanConnect(5))

	entries := svc.Entries(DirectoryFilter{})
	require.Len(t, entries, 1)
	assert.Nil(t, entries[0].Status)
	assert.True(t, entries[0].CanConnect)
}

func TestMostRecentlyIndexedRequestWins(t *testing.T) {
	svc := newDirectory(t,
		[]models.AlumniProfile{profile(5, "Ada", "Acme", "Engineer", ""), profile(6, "Bo", "Beta", "Analyst", "")},
		models.MentorshipRequest{ID: 9, AlumniID: 5, Status: models.StatusPending},
		models.MentorshipRequest{ID: 2, Alumni: &models.UserSummary{ID: 5}, Status: models.StatusRejected},
		models.MentorshipRequest{ID: 3, AlumniID: 6, Status: models.StatusAccepted},
	)

	require.NotNil(t, svc.StatusFor(5))
	assert.Equal(t, models.StatusRejected, *svc.StatusFor(5), "store order decides, not ids or timestamps")
	assert.True(t, svc.CanConnect(5))

	require.NotNil(t, svc.StatusFor(6))
	assert.Equal(t, models.StatusAccepted, *svc.StatusFor(6))
	assert.False(t, svc.CanConnect(6))
}

func TestEntriesFollowStoreChanges(t *testing.T) {
	svc := newDirectory(t, []models.AlumniProfile{profile(5, "Ada", "Acme", "Engineer", "")})
	assert.True(t, svc.Entries(DirectoryFilter{})[0].CanConnect)

	svc.requests.Append(models.MentorshipRequest{ID: 1, AlumniID: 5, Status: models.StatusPending})
	entry := svc.Entries(DirectoryFilter{})[0]
	require.NotNil(t, entry.Status)
	assert.Equal(t, models.StatusPending, *entry.Status)
	assert.False(t, entry.CanConnect)
}

func TestLoadDropsOwnProfile(t *testing.T) {
	svc := newDirectory(t, []models.AlumniProfile{
		profile(student.UserID, "Sam", "Self Inc", "Student", ""),
		profile(5, "Ada", "Acme", "Engineer", ""),
	})
	profiles := svc.Profiles()
	require.Len(t, profiles, 1)
	assert.Equal(t, int64(5), profiles[0].UserID())
}

func TestLoadFailureKeepsSnapshot(t *testing.T) {
	remote := &fakeDirectoryRemote{profiles: []models.AlumniProfile{profile(5, "Ada", "Acme", "Engineer", "")}}
	svc := NewDirectoryService(remote, store.NewRequestStore(store.Sent), student)
	require.NoError(t, svc.Load(context.Background()))

	remote.err = remoteUnreachable()
	assert.Error(t, svc.Load(context.Background()))
	assert.Len(t, svc.Profiles(), 1)
}

func TestEntriesFiltering(t *testing.T) {
	svc := newDirectory(t, []models.AlumniProfile{
		profile(5, "Ada Lovelace", "Acme", "Software Development Lead", "Go, Kubernetes"),
		profile(6, "Bo Chen", "Globex", "Analyst", "Data Science, Finance"),
		profile(8, "Cy Park", "Initech", "Product Manager", "Design"),
	})

	ids := func(entries []DirectoryEntry) []int64 {
		out := []int64{}
		for _, e := range entries {
			out = append(out, e.Profile.UserID())
		}
		return out
	}

	assert.Equal(t, []int64{5, 6, 8}, ids(svc.Entries(DirectoryFilter{})))
	assert.Equal(t, []int64{5}, ids(svc.Entries(DirectoryFilter{Query: "ADA"})), "name, case-insensitive")
	assert.Equal(t, []int64{6}, ids(svc.Entries(DirectoryFilter{Query: "glob"})), "company")
	assert.Equal(t, []int64{8}, ids(svc.Entries(DirectoryFilter{Query: "manager"})), "designation")
	assert.Empty(t, ids(svc.Entries(DirectoryFilter{Query: "kubernetes"})), "expertise is not free-text searched")

	assert.Equal(t, []int64{5}, ids(svc.Entries(DirectoryFilter{Category: "Software Development"})))
	assert.Equal(t, []int64{6}, ids(svc.Entries(DirectoryFilter{Category: "Finance"})), "category matches expertise")
	assert.Equal(t, []int64{8}, ids(svc.Entries(DirectoryFilter{Category: "Design"})))
	assert.Empty(t, ids(svc.Entries(DirectoryFilter{Category: "finance"})), "category match is case-sensitive")
	assert.Empty(t, ids(svc.Entries(DirectoryFilter{Query: "ada", Category: "Finance"})))
}

func TestSuggest(t *testing.T) {
	profiles := []models.AlumniProfile{}
	for i := int64(1); i <= 7; i++ {
		profiles = append(profiles, profile(100+i, "Alex", "Acme", "Engineer", ""))
	}
	profiles = append(profiles, profile(200, "Zed", "Alexa Corp", "Engineer", ""))
	svc := newDirectory(t, profiles)

	assert.Len(t, svc.Suggest("alex", 0), 5)
	assert.Len(t, svc.Suggest("alex", 20), 8)
	got := svc.Suggest("alexa", 3)
	require.Len(t, got, 1)
	assert.Equal(t, int64(200), got[0].UserID())
}

func TestCategoriesReturnsCopy(t *testing.T) {
	svc := newDirectory(t, nil)
	cats := svc.Categories()
	require.NotEmpty(t, cats)
	cats[0] = "changed"
	assert.Equal(t, "Software Development", svc.Categories()[0])
}
