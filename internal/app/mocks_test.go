package app

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/example/permitflow/internal/config"
	"github.com/example/permitflow/internal/ports/secondary"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockRecordRepository implements secondary.RecordRepository for testing.
type mockRecordRepository struct {
	records         map[string]*secondary.RecordRecord
	comments        map[string][]*secondary.CommentRecord
	statusHistory   []statusChange
	updateStatusErr map[string]error
	addCommentErr   error
	listErr         error
}

type statusChange struct {
	ID, Status, Comment, Actor string
}

func newMockRecordRepository() *mockRecordRepository {
	return &mockRecordRepository{
		records:         make(map[string]*secondary.RecordRecord),
		comments:        make(map[string][]*secondary.CommentRecord),
		updateStatusErr: make(map[string]error),
	}
}

func (m *mockRecordRepository) Create(ctx context.Context, record *secondary.RecordRecord) error {
	if _, ok := m.records[record.ID]; ok {
		return fmt.Errorf("record %s already exists", record.ID)
	}
	m.records[record.ID] = record
	return nil
}

func (m *mockRecordRepository) GetByID(ctx context.Context, id string) (*secondary.RecordRecord, error) {
	if r, ok := m.records[id]; ok {
		return r, nil
	}
	return nil, fmt.Errorf("record %s not found", id)
}

func (m *mockRecordRepository) List(ctx context.Context, filters secondary.RecordFilters) ([]*secondary.RecordRecord, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	var result []*secondary.RecordRecord
	for _, r := range m.records {
		if filters.Status != "" && r.Status != filters.Status {
			continue
		}
		if filters.ParentID != "" && r.ParentID != filters.ParentID {
			continue
		}
		result = append(result, r)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (m *mockRecordRepository) UpdateStatus(ctx context.Context, id, status, comment, actor string) error {
	if err := m.updateStatusErr[id]; err != nil {
		return err
	}
	r, ok := m.records[id]
	if !ok {
		return fmt.Errorf("record %s not found", id)
	}
	r.Status = status
	m.statusHistory = append(m.statusHistory, statusChange{ID: id, Status: status, Comment: comment, Actor: actor})
	return nil
}

func (m *mockRecordRepository) AddComment(ctx context.Context, id, body, actor string) error {
	if m.addCommentErr != nil {
		return m.addCommentErr
	}
	m.comments[id] = append(m.comments[id], &secondary.CommentRecord{
		ID:       fmt.Sprintf("COMMENT-%d", len(m.comments[id])+1),
		RecordID: id,
		Body:     body,
		Actor:    actor,
	})
	return nil
}

func (m *mockRecordRepository) ListComments(ctx context.Context, id string) ([]*secondary.CommentRecord, error) {
	return m.comments[id], nil
}

// mockCustomFieldRepository implements secondary.CustomFieldRepository for testing.
type mockCustomFieldRepository struct {
	fields      map[string][]*secondary.CustomFieldRecord
	setValueErr error
	nextID      int
}

func newMockCustomFieldRepository() *mockCustomFieldRepository {
	return &mockCustomFieldRepository{
		fields: make(map[string][]*secondary.CustomFieldRecord),
		nextID: 1,
	}
}

func (m *mockCustomFieldRepository) add(recordID, name, value string) *secondary.CustomFieldRecord {
	f := &secondary.CustomFieldRecord{
		ID:       fmt.Sprintf("FIELD-%03d", m.nextID),
		RecordID: recordID,
		Name:     name,
		Value:    value,
		Position: len(m.fields[recordID]),
	}
	m.nextID++
	m.fields[recordID] = append(m.fields[recordID], f)
	return f
}

func (m *mockCustomFieldRepository) List(ctx context.Context, recordID string) ([]*secondary.CustomFieldRecord, error) {
	return m.fields[recordID], nil
}

func (m *mockCustomFieldRepository) Upsert(ctx context.Context, recordID, label, value string) error {
	for _, f := range m.fields[recordID] {
		if f.Name == label {
			f.Value = value
			return nil
		}
	}
	m.add(recordID, label, value)
	return nil
}

func (m *mockCustomFieldRepository) SetValue(ctx context.Context, fieldID, value string) error {
	if m.setValueErr != nil {
		return m.setValueErr
	}
	for _, fields := range m.fields {
		for _, f := range fields {
			if f.ID == fieldID {
				f.Value = value
				return nil
			}
		}
	}
	return fmt.Errorf("custom field %s not found", fieldID)
}

// mockContactRepository implements secondary.ContactRepository for testing.
type mockContactRepository struct {
	contacts       map[string][]*secondary.ContactRecord
	updatePhoneErr error
	nextID         int
}

func newMockContactRepository() *mockContactRepository {
	return &mockContactRepository{
		contacts: make(map[string][]*secondary.ContactRecord),
		nextID:   1,
	}
}

func (m *mockContactRepository) add(recordID, contactType, phone, email string) *secondary.ContactRecord {
	c := &secondary.ContactRecord{
		RecordID:    recordID,
		ContactType: contactType,
		Name:        contactType + " Person",
		Phone1:      phone,
		Email:       email,
	}
	_ = m.Create(context.Background(), c)
	return c
}

func (m *mockContactRepository) Create(ctx context.Context, contact *secondary.ContactRecord) error {
	if contact.ID == "" {
		contact.ID = fmt.Sprintf("CONTACT-%03d", m.nextID)
		m.nextID++
	}
	contact.Position = len(m.contacts[contact.RecordID])
	m.contacts[contact.RecordID] = append(m.contacts[contact.RecordID], contact)
	return nil
}

func (m *mockContactRepository) ListByRecord(ctx context.Context, recordID string) ([]*secondary.ContactRecord, error) {
	return m.contacts[recordID], nil
}

func (m *mockContactRepository) UpdatePhone(ctx context.Context, contactID, phone string) error {
	if m.updatePhoneErr != nil {
		return m.updatePhoneErr
	}
	for _, contacts := range m.contacts {
		for _, c := range contacts {
			if c.ID == contactID {
				c.Phone1 = phone
				return nil
			}
		}
	}
	return fmt.Errorf("contact %s not found", contactID)
}

// mockInspectionRepository implements secondary.InspectionRepository for testing.
type mockInspectionRepository struct {
	inspections []*secondary.InspectionRecord
	createErr   error
}

func newMockInspectionRepository() *mockInspectionRepository {
	return &mockInspectionRepository{}
}

func (m *mockInspectionRepository) Create(ctx context.Context, inspection *secondary.InspectionRecord) error {
	if m.createErr != nil {
		return m.createErr
	}
	inspection.ID = fmt.Sprintf("INSP-%03d", len(m.inspections)+1)
	m.inspections = append(m.inspections, inspection)
	return nil
}

func (m *mockInspectionRepository) ListByRecord(ctx context.Context, recordID string) ([]*secondary.InspectionRecord, error) {
	var result []*secondary.InspectionRecord
	for i := len(m.inspections) - 1; i >= 0; i-- {
		if m.inspections[i].RecordID == recordID {
			result = append(result, m.inspections[i])
		}
	}
	return result, nil
}

func (m *mockInspectionRepository) scheduled() []*secondary.InspectionRecord {
	var result []*secondary.InspectionRecord
	for _, in := range m.inspections {
		if in.Status == InspectionScheduled {
			result = append(result, in)
		}
	}
	return result
}

// mockMailer implements secondary.Mailer for testing.
type mockMailer struct {
	sent    []secondary.EmailMessage
	sendErr error
}

func (m *mockMailer) Send(ctx context.Context, msg secondary.EmailMessage) error {
	if m.sendErr != nil {
		return m.sendErr
	}
	m.sent = append(m.sent, msg)
	return nil
}

// mockAuditLogRepository implements secondary.AuditLogRepository for testing.
type mockAuditLogRepository struct {
	entries  []*secondary.AuditLogRecord
	pruned   int
	pruneArg int
}

func (m *mockAuditLogRepository) Create(ctx context.Context, entry *secondary.AuditLogRecord) error {
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockAuditLogRepository) List(ctx context.Context, filters secondary.AuditLogFilters) ([]*secondary.AuditLogRecord, error) {
	var result []*secondary.AuditLogRecord
	for _, e := range m.entries {
		if filters.EntityType != "" && e.EntityType != filters.EntityType {
			continue
		}
		if filters.EntityID != "" && e.EntityID != filters.EntityID {
			continue
		}
		if filters.ActorID != "" && e.ActorID != filters.ActorID {
			continue
		}
		result = append(result, e)
	}
	if filters.Limit > 0 && len(result) > filters.Limit {
		result = result[:filters.Limit]
	}
	return result, nil
}

func (m *mockAuditLogRepository) PruneOlderThan(ctx context.Context, days int) (int, error) {
	m.pruneArg = days
	return m.pruned, nil
}

var errBoom = errors.New("boom")

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.DBPath = ":memory:"
	return cfg
}
