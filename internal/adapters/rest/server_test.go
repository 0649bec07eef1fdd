package rest_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theanasiqbal/Upfox-Property/internal/adapters/memory"
	"github.com/theanasiqbal/Upfox-Property/internal/adapters/rest"
	"github.com/theanasiqbal/Upfox-Property/internal/configs"
	"github.com/theanasiqbal/Upfox-Property/internal/contextkeys"
	"github.com/theanasiqbal/Upfox-Property/internal/core/domain"
	"github.com/theanasiqbal/Upfox-Property/internal/core/usecase"
)

type testAPI struct {
	handler    http.Handler
	properties *memory.PropertyRepository
	inquiries  *memory.InquiryRepository
	users      *memory.UserRepository
	favorites  *memory.FavoritesRepository
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	properties := memory.NewPropertyRepository(memory.SeedProperties()...)
	users := memory.NewUserRepository(memory.SeedUsers()...)
	inquiries := memory.NewInquiryRepository(memory.SeedInquiries()...)
	favorites := memory.NewFavoritesRepository(memory.SeedFavorites()...)
	drafts := memory.NewDraftStore()
	deleteProperty := usecase.NewDeletePropertyUseCase(properties, inquiries, favorites)
	events := memory.NewInProcessEventPublisher(usecase.NewRecordPropertyViewUseCase(properties))

	public := rest.NewPublicHandler(
		usecase.NewBrowsePropertiesUseCase(properties),
		usecase.NewGetPropertyDetailsUseCase(properties, users, events),
		usecase.NewGetFilterOptionsUseCase(domain.DefaultPageSize),
		usecase.NewCreateInquiryUseCase(properties, inquiries),
		domain.DefaultPageSize,
	)
	seller := rest.NewSellerHandler(
		usecase.NewGetSellerPropertiesUseCase(properties),
		usecase.NewGetSellerDashboardUseCase(properties, inquiries),
		usecase.NewGetSellerInquiriesUseCase(properties, inquiries),
		usecase.NewUpdateInquiryStatusUseCase(properties, inquiries),
		usecase.NewArchivePropertyUseCase(properties, events),
		usecase.NewResubmitPropertyUseCase(properties, events),
		deleteProperty,
		usecase.NewGetProfileUseCase(users),
		usecase.NewUpdateProfileUseCase(users),
	)
	submissions := rest.NewSubmissionHandler(
		usecase.NewStartSubmissionUseCase(drafts),
		usecase.NewUpdateSubmissionDraftUseCase(drafts),
		usecase.NewNextSubmissionStepUseCase(drafts),
		usecase.NewPreviousSubmissionStepUseCase(drafts),
		usecase.NewSubmitPropertyUseCase(drafts, properties, events, time.Second),
		usecase.NewResetSubmissionUseCase(drafts),
	)
	saved := rest.NewFavoritesHandler(
		usecase.NewAddToFavoritesUseCase(favorites, properties),
		usecase.NewRemoveFromFavoritesUseCase(favorites),
		usecase.NewGetUserFavoritesUseCase(favorites, properties, domain.DefaultPageSize),
		usecase.NewGetUserFavoriteIDsUseCase(favorites),
	)
	admin := rest.NewAdminHandler(
		usecase.NewListPropertiesByStatusUseCase(properties),
		usecase.NewApprovePropertyUseCase(properties, events),
		usecase.NewRejectPropertyUseCase(properties, events),
		usecase.NewGetAdminDashboardUseCase(properties, users, inquiries),
		usecase.NewListUsersUseCase(users),
		deleteProperty,
		usecase.NewSetUserRoleUseCase(users),
		usecase.NewDeleteUserUseCase(users, favorites),
	)

	cfg := configs.RESTConfig{Port: "0", CORSAllowedOrigins: []string{"http://localhost:3000"}}
	return &testAPI{
		handler:    rest.NewRouter(cfg, public, seller, submissions, saved, admin, contextkeys.NoopLogger()),
		properties: properties,
		inquiries:  inquiries,
		users:      users,
		favorites:  favorites,
	}
}

type requestOption func(r *http.Request)

func asUser(id string) requestOption {
	return func(r *http.Request) { r.Header.Set("X-User-ID", id) }
}

func asAdmin() requestOption {
	return func(r *http.Request) {
		r.Header.Set("X-User-ID", memory.SeedAdminID)
		r.Header.Set("X-User-Role", "admin")
	}
}

func (a *testAPI) do(t *testing.T, method, path string, body interface{}, opts ...requestOption) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func cardIDs(cards []rest.PropertyCardResponse) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.ID)
	}
	return out
}

func TestBrowseProperties(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/properties?cities=Civil%20Lines&listingTypes=rent&sort=price-low", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))

	page := decode[rest.PaginatedPropertiesResponse](t, rec)
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, []string{"9", "8", "3", "7"}, cardIDs(page.Data))
}

func TestBrowseProperties_PageBeyondRangeIsEmpty(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/properties?page=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	page := decode[rest.PaginatedPropertiesResponse](t, rec)
	assert.Equal(t, 10, page.Total)
	assert.Equal(t, 5, page.Page)
	assert.Empty(t, page.Data)
	assert.NotNil(t, page.Data)
}

func TestBrowseProperties_HugePageIsEmpty(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/properties?page=4611686018427387904", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	page := decode[rest.PaginatedPropertiesResponse](t, rec)
	assert.Equal(t, 10, page.Total)
	assert.Empty(t, page.Data)

	// за пределами int - ошибка валидации, а не паника
	rec = api.do(t, http.MethodGet, "/api/v1/properties?page=99999999999999999999", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestBrowseProperties_InvalidQuery(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/properties?sort=popular&bedrooms=two", nil)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	resp := decode[rest.ErrorResponse](t, rec)
	assert.Contains(t, resp.Fields, "sort")
	assert.Contains(t, resp.Fields, "bedrooms")
}

func TestGetPropertyDetails(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/properties/3", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	details := decode[rest.PropertyDetailsResponse](t, rec)
	assert.Equal(t, "3", details.Property.ID)
	require.NotNil(t, details.Seller)
	assert.Equal(t, memory.SeedSeller2ID, details.Seller.ID)
	assert.LessOrEqual(t, len(details.Similar), domain.SimilarPropertiesLimit)

	p, err := api.properties.Get(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, 321, p.ViewCount)
}

func TestGetPropertyDetails_HiddenUnlessApproved(t *testing.T) {
	api := newTestAPI(t)

	for _, id := range []string{"11", "13", "14", "missing"} {
		rec := api.do(t, http.MethodGet, "/api/v1/properties/"+id, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}
}

func TestGetFilterOptions(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/filters/options", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	opts := decode[map[string]json.RawMessage](t, rec)
	for _, key := range []string{"cities", "propertyTypes", "listingTypes", "amenities", "sortKeys", "priceRanges"} {
		assert.Contains(t, opts, key)
	}
}

func TestCreateInquiry(t *testing.T) {
	api := newTestAPI(t)
	body := rest.CreateInquiryRequest{Name: "Ravi", Email: "ravi@example.com", Phone: "+91 98765 43210", Message: "Is it available?"}

	rec := api.do(t, http.MethodPost, "/api/v1/properties/1/inquiries", body, asUser(memory.SeedBuyerID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	inq := decode[domain.Inquiry](t, rec)
	assert.Equal(t, domain.InquiryNew, inq.Status)
	assert.Equal(t, memory.SeedBuyerID, inq.BuyerID)

	// анонимно тоже можно
	rec = api.do(t, http.MethodPost, "/api/v1/properties/1/inquiries", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = api.do(t, http.MethodPost, "/api/v1/properties/11/inquiries", body)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body.Email = "nope"
	rec = api.do(t, http.MethodPost, "/api/v1/properties/1/inquiries", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[rest.ErrorResponse](t, rec).Fields, "email")
}

func TestAuth(t *testing.T) {
	api := newTestAPI(t)

	assert.Equal(t, http.StatusUnauthorized, api.do(t, http.MethodGet, "/api/v1/seller/dashboard", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, api.do(t, http.MethodGet, "/api/v1/seller/dashboard", nil, asUser("not-a-uuid")).Code)
	assert.Equal(t, http.StatusForbidden, api.do(t, http.MethodGet, "/api/v1/admin/dashboard", nil, asUser(memory.SeedSellerID)).Code)
	assert.Equal(t, http.StatusOK, api.do(t, http.MethodGet, "/api/v1/admin/dashboard", nil, asAdmin()).Code)
}

func TestSellerEndpoints(t *testing.T) {
	api := newTestAPI(t)
	seller := asUser(memory.SeedSellerID)

	rec := api.do(t, http.MethodGet, "/api/v1/seller/dashboard", nil, seller)
	require.Equal(t, http.StatusOK, rec.Code)
	dashboard := decode[domain.SellerDashboard](t, rec)
	assert.Equal(t, 8, dashboard.TotalProperties)

	rec = api.do(t, http.MethodGet, "/api/v1/seller/properties?status=pending", nil, seller)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"11"}, cardIDs(decode[rest.PropertyListResponse](t, rec).Data))

	rec = api.do(t, http.MethodGet, "/api/v1/seller/properties?status=sold", nil, seller)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// чужое объявление
	rec = api.do(t, http.MethodPost, "/api/v1/seller/properties/3/archive", nil, seller)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(t, http.MethodPost, "/api/v1/seller/properties/1/archive", nil, seller)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "archived", decode[rest.PropertyCardResponse](t, rec).Status)

	rec = api.do(t, http.MethodPost, "/api/v1/seller/properties/1/archive", nil, seller)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(t, http.MethodPost, "/api/v1/seller/properties/1/resubmit", nil, seller)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pending", decode[rest.PropertyCardResponse](t, rec).Status)
}

func TestSellerInquiries(t *testing.T) {
	api := newTestAPI(t)
	seller := asUser(memory.SeedSellerID)

	rec := api.do(t, http.MethodGet, "/api/v1/seller/inquiries", nil, seller)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[rest.InquiryListResponse](t, rec)
	require.NotEmpty(t, list.Data)
	target := list.Data[0]

	rec = api.do(t, http.MethodPatch, "/api/v1/seller/inquiries/"+target.ID, rest.UpdateInquiryStatusRequest{Status: "spam"}, seller)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = api.do(t, http.MethodPatch, "/api/v1/seller/inquiries/"+target.ID, rest.UpdateInquiryStatusRequest{Status: "closed"}, seller)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.InquiryClosed, decode[domain.Inquiry](t, rec).Status)

	rec = api.do(t, http.MethodPatch, "/api/v1/seller/inquiries/"+target.ID, rest.UpdateInquiryStatusRequest{Status: "contacted"}, seller)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(t, http.MethodPatch, "/api/v1/seller/inquiries/"+target.ID, rest.UpdateInquiryStatusRequest{Status: "closed"}, asUser(memory.SeedSeller2ID))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminModeration(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/v1/admin/properties", nil, asAdmin())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"11", "12"}, cardIDs(decode[rest.PropertyListResponse](t, rec).Data))

	rec = api.do(t, http.MethodPost, "/api/v1/admin/properties/12/reject", rest.RejectPropertyRequest{Reason: "  "}, asAdmin())
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[rest.ErrorResponse](t, rec).Fields, "reason")

	rec = api.do(t, http.MethodPost, "/api/v1/admin/properties/12/reject", rest.RejectPropertyRequest{Reason: "Blurry photos"}, asAdmin())
	require.Equal(t, http.StatusOK, rec.Code)
	card := decode[rest.PropertyCardResponse](t, rec)
	assert.Equal(t, "rejected", card.Status)
	assert.Equal(t, "Blurry photos", card.RejectionReason)

	rec = api.do(t, http.MethodPost, "/api/v1/admin/properties/11/approve", nil, asAdmin())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "approved", decode[rest.PropertyCardResponse](t, rec).Status)

	rec = api.do(t, http.MethodPost, "/api/v1/admin/properties/11/approve", nil, asAdmin())
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(t, http.MethodPost, "/api/v1/admin/properties/missing/approve", nil, asAdmin())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/v1/admin/users", nil, asAdmin())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 4, decode[rest.UserListResponse](t, rec).Total)
}

func TestSubmissionFlow(t *testing.T) {
	api := newTestAPI(t)
	seller := asUser(memory.SeedSellerID)

	rec := api.do(t, http.MethodPost, "/api/v1/seller/submissions", nil, seller)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	snapshot := decode[domain.SubmissionSnapshot](t, rec)
	require.NotEmpty(t, snapshot.ID)
	assert.Equal(t, domain.StepBasic, snapshot.Step)
	base := "/api/v1/seller/submissions/" + snapshot.ID

	// строгий режим: пустой шаг не пропускает
	rec = api.do(t, http.MethodPost, base+"/next", nil, seller)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[rest.ErrorResponse](t, rec).Fields, "title")

	draft := domain.NewSubmissionDraft()
	draft.Title = "Sunny 2BHK"
	draft.Description = "Close to the market"
	draft.PropertyType = domain.PropertyTypeApartment
	draft.ListingType = domain.ListingTypeRent
	draft.Price = 15000
	draft.SelectedAmenities = []string{"ac", "parking"}
	draft.Address = "12 Station Road"
	draft.City = "Civil Lines"
	draft.State = "Uttar Pradesh"
	draft.Zipcode = "243001"
	draft.Images = []string{"cover.jpg"}

	rec = api.do(t, http.MethodPut, base+"/draft", draft, seller)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// чужой черновик недоступен
	rec = api.do(t, http.MethodPut, base+"/draft", draft, asUser(memory.SeedSeller2ID))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	for i := 0; i < 4; i++ {
		rec = api.do(t, http.MethodPost, base+"/next", nil, seller)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	}
	assert.Equal(t, domain.StepReview, decode[domain.SubmissionSnapshot](t, rec).Step)

	rec = api.do(t, http.MethodPost, base+"/submit", nil, seller)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[domain.Property](t, rec)
	assert.Equal(t, domain.StatusPending, created.Status)
	assert.Equal(t, memory.SeedSellerID, created.SellerID)

	rec = api.do(t, http.MethodPost, base+"/submit", nil, seller)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = api.do(t, http.MethodPost, base+"/reset", nil, seller)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, decode[domain.SubmissionSnapshot](t, rec).Submitted)

	rec = api.do(t, http.MethodPost, "/api/v1/seller/submissions/unknown/next", nil, seller)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFavorites(t *testing.T) {
	api := newTestAPI(t)
	seller := asUser(memory.SeedSellerID)

	rec := api.do(t, http.MethodGet, "/api/v1/seller/favorites", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/v1/seller/favorites", nil, seller)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	page := decode[rest.PaginatedPropertiesResponse](t, rec)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, []string{"6", "4", "3"}, cardIDs(page.Data), "latest saved first")

	rec = api.do(t, http.MethodPost, "/api/v1/seller/favorites/1", nil, seller)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	rec = api.do(t, http.MethodPost, "/api/v1/seller/favorites/1", nil, seller)
	require.Equal(t, http.StatusNoContent, rec.Code, "saving twice is not an error")

	rec = api.do(t, http.MethodGet, "/api/v1/seller/favorites/ids", nil, seller)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"1", "6", "4", "3"}, decode[rest.FavoriteIDsResponse](t, rec).Data)

	// только опубликованные объявления
	for _, id := range []string{"11", "13", "missing"} {
		rec = api.do(t, http.MethodPost, "/api/v1/seller/favorites/"+id, nil, seller)
		assert.Equal(t, http.StatusNotFound, rec.Code, id)
	}

	rec = api.do(t, http.MethodDelete, "/api/v1/seller/favorites/4", nil, seller)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = api.do(t, http.MethodDelete, "/api/v1/seller/favorites/4", nil, seller)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// снятое с публикации объявление остается в ID, но не в списке
	rec = api.do(t, http.MethodPost, "/api/v1/seller/properties/3/archive", nil, asUser(memory.SeedSeller2ID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/api/v1/seller/favorites", nil, seller)
	require.Equal(t, http.StatusOK, rec.Code)
	page = decode[rest.PaginatedPropertiesResponse](t, rec)
	assert.Equal(t, []string{"1", "6"}, cardIDs(page.Data))
	assert.Equal(t, 2, page.Total)

	rec = api.do(t, http.MethodGet, "/api/v1/seller/favorites/ids", nil, seller)
	assert.Equal(t, []string{"1", "6", "3"}, decode[rest.FavoriteIDsResponse](t, rec).Data)

	rec = api.do(t, http.MethodGet, "/api/v1/seller/favorites?page=0", nil, seller)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// у другого пользователя свое избранное
	rec = api.do(t, http.MethodGet, "/api/v1/seller/favorites/ids", nil, asUser(memory.SeedBuyerID))
	assert.Empty(t, decode[rest.FavoriteIDsResponse](t, rec).Data)
}

func TestDeleteProperty(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()
	seller := asUser(memory.SeedSellerID)

	rec := api.do(t, http.MethodDelete, "/api/v1/seller/properties/3", nil, seller)
	assert.Equal(t, http.StatusForbidden, rec.Code, "not the owner")

	rec = api.do(t, http.MethodDelete, "/api/v1/seller/properties/1", nil, seller)
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	rec = api.do(t, http.MethodGet, "/api/v1/properties/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	left, err := api.inquiries.ListByProperties(ctx, []string{"1"})
	require.NoError(t, err)
	assert.Empty(t, left, "inquiries go with the property")

	rec = api.do(t, http.MethodDelete, "/api/v1/seller/properties/1", nil, seller)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// модератор удаляет любое объявление, в том числе на модерации
	rec = api.do(t, http.MethodDelete, "/api/v1/admin/properties/12", nil, asUser(memory.SeedSeller2ID))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = api.do(t, http.MethodDelete, "/api/v1/admin/properties/12", nil, asAdmin())
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = api.do(t, http.MethodDelete, "/api/v1/admin/properties/3", nil, asAdmin())
	require.Equal(t, http.StatusNoContent, rec.Code)

	ids, err := api.favorites.ListPropertyIDs(ctx, memory.SeedSellerID)
	require.NoError(t, err)
	assert.Equal(t, []string{"6", "4"}, ids)

	rec = api.do(t, http.MethodGet, "/api/v1/admin/properties", nil, asAdmin())
	assert.Equal(t, []string{"11"}, cardIDs(decode[rest.PropertyListResponse](t, rec).Data))
}

func TestAdminUserManagement(t *testing.T) {
	api := newTestAPI(t)
	ctx := context.Background()
	rolePath := "/api/v1/admin/users/" + memory.SeedBuyerID + "/role"

	rec := api.do(t, http.MethodPatch, rolePath, rest.SetUserRoleRequest{Role: "admin"}, asUser(memory.SeedBuyerID))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(t, http.MethodPatch, rolePath, rest.SetUserRoleRequest{Role: "admin"}, asAdmin())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, domain.RoleAdmin, decode[domain.User](t, rec).Role)

	rec = api.do(t, http.MethodPatch, rolePath, rest.SetUserRoleRequest{Role: "user"}, asAdmin())
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.RoleUser, decode[domain.User](t, rec).Role)

	rec = api.do(t, http.MethodPatch, rolePath, rest.SetUserRoleRequest{Role: "owner"}, asAdmin())
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[rest.ErrorResponse](t, rec).Fields, "role")

	rec = api.do(t, http.MethodPatch, "/api/v1/admin/users/"+memory.SeedAdminID+"/role", rest.SetUserRoleRequest{Role: "user"}, asAdmin())
	assert.Equal(t, http.StatusForbidden, rec.Code, "admin cannot demote themselves")

	rec = api.do(t, http.MethodPatch, "/api/v1/admin/users/missing/role", rest.SetUserRoleRequest{Role: "admin"}, asAdmin())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodDelete, "/api/v1/admin/users/"+memory.SeedAdminID, nil, asAdmin())
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = api.do(t, http.MethodDelete, "/api/v1/admin/users/"+memory.SeedSellerID, nil, asAdmin())
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
	rec = api.do(t, http.MethodDelete, "/api/v1/admin/users/"+memory.SeedSellerID, nil, asAdmin())
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/v1/admin/users", nil, asAdmin())
	assert.Equal(t, 3, decode[rest.UserListResponse](t, rec).Total)

	ids, err := api.favorites.ListPropertyIDs(ctx, memory.SeedSellerID)
	require.NoError(t, err)
	assert.Empty(t, ids)

	// объявления удаленного продавца остаются, но без профиля
	rec = api.do(t, http.MethodGet, "/api/v1/properties/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, decode[rest.PropertyDetailsResponse](t, rec).Seller)
}

func TestSellerProfile(t *testing.T) {
	api := newTestAPI(t)
	seller := asUser(memory.SeedSellerID)

	rec := api.do(t, http.MethodGet, "/api/v1/seller/profile", nil, seller)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rahul Sharma", decode[domain.User](t, rec).Name)

	update := rest.UpdateProfileRequest{Name: "  Rahul S. Sharma ", Phone: "+91 98370 99999", Bio: "Owner and broker"}
	rec = api.do(t, http.MethodPut, "/api/v1/seller/profile", update, seller)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	u := decode[domain.User](t, rec)
	assert.Equal(t, "Rahul S. Sharma", u.Name)
	assert.Equal(t, "Owner and broker", u.Bio)
	assert.Equal(t, "rahul@example.com", u.Email, "email is read-only")
	assert.Equal(t, domain.RoleUser, u.Role)

	rec = api.do(t, http.MethodGet, "/api/v1/properties/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Rahul S. Sharma", decode[rest.PropertyDetailsResponse](t, rec).Seller.Name)

	rec = api.do(t, http.MethodPut, "/api/v1/seller/profile", rest.UpdateProfileRequest{Name: " "}, seller)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decode[rest.ErrorResponse](t, rec).Fields, "name")

	rec = api.do(t, http.MethodGet, "/api/v1/seller/profile", nil, asUser("11111111-1111-4111-8111-111111111111"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	api := newTestAPI(t)
	rec := api.do(t, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
