// Package supabase implements the storage contract over Supabase's PostgREST
// API. No direct database connection is held; every operation is an HTTP
// call against /rest/v1.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/fcja/agendamentos/internal/domain"
	"github.com/fcja/agendamentos/internal/infra/storage"
)

// Client talks to one Supabase project.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
	log        storage.Logger
}

// NewClient builds a client for the project at baseURL. serviceKey may be
// empty; it is only needed for operator account writes, which row level
// security denies to the anon role.
func NewClient(baseURL, anonKey, serviceKey string, timeout time.Duration, log storage.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		serviceKey: serviceKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Init is a no-op: the schema is managed in the Supabase dashboard, the
// REST role has no DDL rights. Logged so operators see which backend runs.
func (c *Client) Init(ctx context.Context) error {
	c.log.Info("supabase backend selected, schema managed remotely at %s", c.baseURL)
	return nil
}

func (c *Client) Close() error {
	return nil
}

// InsertVisitor stores a visitor booking and returns it with the assigned id.
func (c *Client) InsertVisitor(ctx context.Context, v *domain.Visitor) (*domain.Visitor, error) {
	payload := visitorInsert{
		Name: v.Name, Gender: v.Gender, Email: v.Email, Phone: v.Phone,
		Address: v.Address, PartySize: v.PartySize, VisitDate: v.VisitDate,
		Shift: v.Shift, ArrivalTime: v.ArrivalTime, Duration: v.Duration, Notes: v.Notes,
	}
	var rows []domain.Visitor
	if err := c.insert(ctx, "visitante", c.anonKey, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: InsertVisitor - empty representation", ErrInvalidResponse)
	}
	return &rows[0], nil
}

// InsertSchool stores a school booking and returns it with the assigned id.
func (c *Client) InsertSchool(ctx context.Context, s *domain.School) (*domain.School, error) {
	payload := schoolInsert{
		SchoolName: s.SchoolName, Representative: s.Representative, Email: s.Email,
		Phone: s.Phone, Address: s.Address, StudentCount: s.StudentCount,
		VisitDate: s.VisitDate, Shift: s.Shift, ArrivalTime: s.ArrivalTime,
		Duration: s.Duration, Notes: s.Notes,
	}
	var rows []domain.School
	if err := c.insert(ctx, "escola", c.anonKey, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: InsertSchool - empty representation", ErrInvalidResponse)
	}
	return &rows[0], nil
}

// InsertInstitution stores a higher-education booking and returns it with the
// assigned id.
func (c *Client) InsertInstitution(ctx context.Context, i *domain.Institution) (*domain.Institution, error) {
	payload := institutionInsert{
		InstitutionName: i.InstitutionName, Representative: i.Representative,
		Email: i.Email, Phone: i.Phone, Address: i.Address, StudentCount: i.StudentCount,
		VisitDate: i.VisitDate, Shift: i.Shift, ArrivalTime: i.ArrivalTime,
		Duration: i.Duration, Notes: i.Notes,
	}
	var rows []domain.Institution
	if err := c.insert(ctx, "ies", c.anonKey, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: InsertInstitution - empty representation", ErrInvalidResponse)
	}
	return &rows[0], nil
}

// InsertResearcher stores a researcher booking and returns it with the
// assigned id.
func (c *Client) InsertResearcher(ctx context.Context, r *domain.Researcher) (*domain.Researcher, error) {
	payload := researcherInsert{
		Name: r.Name, Gender: r.Gender, Email: r.Email, Phone: r.Phone,
		Institution: r.Institution, ResearchTopic: r.ResearchTopic,
		VisitDate: r.VisitDate, Shift: r.Shift, ArrivalTime: r.ArrivalTime,
		Duration: r.Duration, Notes: r.Notes,
	}
	var rows []domain.Researcher
	if err := c.insert(ctx, "pesquisador", c.anonKey, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: InsertResearcher - empty representation", ErrInvalidResponse)
	}
	return &rows[0], nil
}

// ListVisitors lists visitor bookings per the filter ordering contract.
func (c *Client) ListVisitors(ctx context.Context, f domain.ListFilter) ([]*domain.Visitor, error) {
	var rows []*domain.Visitor
	if err := c.list(ctx, domain.CategoryVisitor, f, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = make([]*domain.Visitor, 0)
	}
	return rows, nil
}

// ListSchools lists school bookings per the filter ordering contract.
func (c *Client) ListSchools(ctx context.Context, f domain.ListFilter) ([]*domain.School, error) {
	var rows []*domain.School
	if err := c.list(ctx, domain.CategorySchool, f, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = make([]*domain.School, 0)
	}
	return rows, nil
}

// ListInstitutions lists higher-education bookings per the filter ordering
// contract.
func (c *Client) ListInstitutions(ctx context.Context, f domain.ListFilter) ([]*domain.Institution, error) {
	var rows []*domain.Institution
	if err := c.list(ctx, domain.CategoryInstitution, f, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = make([]*domain.Institution, 0)
	}
	return rows, nil
}

// ListResearchers lists researcher bookings per the filter ordering contract.
func (c *Client) ListResearchers(ctx context.Context, f domain.ListFilter) ([]*domain.Researcher, error) {
	var rows []*domain.Researcher
	if err := c.list(ctx, domain.CategoryResearcher, f, &rows); err != nil {
		return nil, err
	}
	if rows == nil {
		rows = make([]*domain.Researcher, 0)
	}
	return rows, nil
}

// CountByDateRange counts rows with data between start and end, inclusive.
// PostgREST returns the total in the Content-Range header when asked for an
// exact count, so no body is transferred.
func (c *Client) CountByDateRange(ctx context.Context, cat domain.Category, start, end time.Time) (int64, error) {
	params := url.Values{}
	params.Set("select", "id")
	params.Add("data", "gte."+start.Format(domain.DateFormat))
	params.Add("data", "lte."+end.Format(domain.DateFormat))
	return c.count(ctx, cat.Table(), params)
}

// CountByShift splits rows of one exact date by shift value.
func (c *Client) CountByShift(ctx context.Context, cat domain.Category, date time.Time) (int64, int64, error) {
	morning, err := c.countShift(ctx, cat, date, domain.ShiftMorning)
	if err != nil {
		return 0, 0, err
	}
	afternoon, err := c.countShift(ctx, cat, date, domain.ShiftAfternoon)
	if err != nil {
		return 0, 0, err
	}
	return morning, afternoon, nil
}

func (c *Client) countShift(ctx context.Context, cat domain.Category, date time.Time, shift domain.Shift) (int64, error) {
	params := url.Values{}
	params.Set("select", "id")
	params.Set("data", "eq."+date.Format(domain.DateFormat))
	params.Set("turno", "eq."+string(shift))
	return c.count(ctx, cat.Table(), params)
}

// GetActiveUser fetches an active operator account by username.
func (c *Client) GetActiveUser(ctx context.Context, username string) (*domain.User, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("username", "eq."+username)
	params.Set("ativo", "eq.1")
	params.Set("limit", "1")

	var rows []userWire
	if err := c.get(ctx, domain.UsersTable, params, nil, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, storage.ErrUserNotFound
	}
	return rows[0].toDomain(), nil
}

// ListUsers lists every operator account, newest first. Needs the service
// role key on projects where RLS hides the usuarios table from anon reads.
func (c *Client) ListUsers(ctx context.Context) ([]*domain.User, error) {
	params := url.Values{}
	params.Set("select", "*")
	params.Set("order", "id.desc")

	var rows []userWire
	if err := c.get(ctx, domain.UsersTable, params, nil, &rows); err != nil {
		return nil, err
	}
	out := make([]*domain.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// CreateUser stores a new operator account with an already-hashed password.
// Uses the service role key when configured, since RLS denies anon writes to
// the usuarios table.
func (c *Client) CreateUser(ctx context.Context, username, passwordHash string) (*domain.User, error) {
	key := c.serviceKey
	if key == "" {
		key = c.anonKey
	}
	payload := userWire{Username: username, Password: passwordHash, Ativo: 1}
	var rows []userWire
	if err := c.insert(ctx, domain.UsersTable, key, payload, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: CreateUser - empty representation", ErrInvalidResponse)
	}
	return rows[0].toDomain(), nil
}

// list performs the filtered category query. Free-text search becomes an
// or=(col.ilike.*term*,...) disjunction over the category's search columns.
func (c *Client) list(ctx context.Context, cat domain.Category, f domain.ListFilter, out interface{}) error {
	params := url.Values{}
	params.Set("select", "*")

	if term := escapeTerm(f.Search); term != "" {
		parts := make([]string, 0, len(domain.SearchColumns[cat]))
		for _, col := range domain.SearchColumns[cat] {
			parts = append(parts, col+".ilike.*"+term+"*")
		}
		params.Set("or", "("+strings.Join(parts, ",")+")")
	}
	if f.StartDate != nil {
		params.Add("data", "gte."+f.StartDate.Format(domain.DateFormat))
	}
	if f.EndDate != nil {
		params.Add("data", "lte."+f.EndDate.Format(domain.DateFormat))
	}

	if f.HasDateBound() {
		params.Set("order", "data.desc,id.desc")
	} else {
		params.Set("order", "id.desc")
	}
	params.Set("limit", strconv.FormatUint(f.EffectiveLimit(), 10))

	return c.get(ctx, cat.Table(), params, nil, out)
}

// escapeTerm strips the characters PostgREST reserves inside filter values.
func escapeTerm(s string) string {
	replaced := strings.NewReplacer(",", " ", "(", " ", ")", " ", "*", " ").Replace(s)
	return strings.TrimSpace(replaced)
}

// get runs a GET against /rest/v1/<table> and decodes the JSON array body.
func (c *Client) get(ctx context.Context, table string, params url.Values, extra http.Header, out interface{}) error {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrRequest, err)
	}
	c.setAuth(req, c.anonKey)
	for k, vs := range extra {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// insert POSTs one row and decodes the returned representation into out.
func (c *Client) insert(ctx context.Context, table, key string, payload interface{}, out interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: failed to encode payload: %v", ErrRequest, err)
	}

	endpoint := fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrRequest, err)
	}
	c.setAuth(req, key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Prefer", "return=representation")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// count asks for an exact count with an empty range and reads the total from
// the Content-Range header ("0-0/42" or "*/0" when there are no rows).
func (c *Client) count(ctx context.Context, table string, params url.Values) (int64, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?%s", c.baseURL, table, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to create request: %v", ErrRequest, err)
	}
	c.setAuth(req, c.anonKey)
	req.Header.Set("Prefer", "count=exact")
	req.Header.Set("Range", "0-0")
	req.Header.Set("Range-Unit", "items")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to execute request: %v", ErrRequest, err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusOK, http.StatusPartialContent, http.StatusRequestedRangeNotSatisfiable:
		// A not-satisfiable range still carries the total for empty tables.
	default:
		return 0, fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	return parseContentRange(resp.Header.Get("Content-Range"))
}

func parseContentRange(v string) (int64, error) {
	idx := strings.LastIndex(v, "/")
	if idx < 0 || idx == len(v)-1 {
		return 0, fmt.Errorf("%w: missing Content-Range total in %q", ErrInvalidResponse, v)
	}
	total, err := strconv.ParseInt(v[idx+1:], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad Content-Range total in %q: %v", ErrInvalidResponse, v, err)
	}
	return total, nil
}

func (c *Client) setAuth(req *http.Request, key string) {
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)
}
