package catalog

import (
	"strconv"
	"strings"
)

type Document struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Category     string   `json:"category"`
	Size         string   `json:"size"`
	Version      string   `json:"version"`
	LastModified string   `json:"last_modified"`
	ModifiedBy   string   `json:"modified_by"`
	Tags         []string `json:"tags"`
	Status       string   `json:"status"`
}

func (d Document) SearchFields() []string { return append([]string{d.Name}, d.Tags...) }
func (d Document) CategoryField() string  { return d.Category }
func (d Document) StatusField() string    { return d.Status }
func (d Document) Cells() []string {
	return []string{d.Name, d.Category, d.Version, d.LastModified, d.ModifiedBy, strings.Join(d.Tags, ", "), d.Status}
}

type AuditEntry struct {
	ID        int    `json:"id"`
	Action    string `json:"action"`
	Document  string `json:"document"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
	Details   string `json:"details"`
}

func (a AuditEntry) SearchFields() []string {
	return []string{a.Action, a.Document, a.User, a.Details}
}

// Audit entries carry neither a category nor a status, so any active
// category or status criterion excludes them all.
func (a AuditEntry) CategoryField() string { return "" }
func (a AuditEntry) StatusField() string   { return "" }
func (a AuditEntry) Cells() []string {
	return []string{a.Timestamp, a.Action, a.Document, a.User, a.Details}
}

// ExtractedItem is one piece of information pulled out of a document by
// the AI processing stage.
type ExtractedItem struct {
	ID         int    `json:"id"`
	Document   string `json:"document"`
	Type       string `json:"type"`
	Content    string `json:"content"`
	Confidence int    `json:"confidence"`
	Category   string `json:"category"`
	Priority   string `json:"priority"`
	Date       string `json:"date"`
}

func (e ExtractedItem) SearchFields() []string { return []string{e.Content, e.Document} }
func (e ExtractedItem) CategoryField() string  { return e.Category }
func (e ExtractedItem) StatusField() string    { return e.Priority }
func (e ExtractedItem) Cells() []string {
	return []string{e.Document, e.Type, e.Content, strconv.Itoa(e.Confidence) + "%", e.Category, e.Priority, e.Date}
}

type Deadline struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Date     string `json:"date"`
	DaysLeft int    `json:"days_left"`
	Priority string `json:"priority"`
	Category string `json:"category"`
	Status   string `json:"status"`
}

func (d Deadline) SearchFields() []string { return []string{d.Title} }
func (d Deadline) CategoryField() string  { return d.Category }
func (d Deadline) StatusField() string    { return d.Status }
func (d Deadline) Cells() []string {
	return []string{d.Title, d.Date, strconv.Itoa(d.DaysLeft), d.Priority, d.Category, d.Status}
}

type Payment struct {
	ID       int    `json:"id"`
	Vendor   string `json:"vendor"`
	Amount   string `json:"amount"`
	DueDate  string `json:"due_date"`
	Status   string `json:"status"`
	Category string `json:"category"`
}

func (p Payment) SearchFields() []string { return []string{p.Vendor} }
func (p Payment) CategoryField() string  { return p.Category }
func (p Payment) StatusField() string    { return p.Status }
func (p Payment) Cells() []string {
	return []string{p.Vendor, p.Amount, p.DueDate, p.Category, p.Status}
}

type SecurityEvent struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Severity  string `json:"severity"`
	Timestamp string `json:"timestamp"`
	Resolved  bool   `json:"resolved"`
}

func (s SecurityEvent) SearchFields() []string { return []string{s.Message} }
func (s SecurityEvent) CategoryField() string  { return s.Type }
func (s SecurityEvent) StatusField() string    { return s.Severity }
func (s SecurityEvent) Cells() []string {
	resolved := "open"
	if s.Resolved {
		resolved = "resolved"
	}
	return []string{s.Timestamp, s.Type, s.Message, s.Severity, resolved}
}

// Connector is an upstream document source feeding ingestion.
type Connector struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	LastSync    string `json:"last_sync"`
	Documents   int    `json:"documents"`
	Description string `json:"description"`
}

func (c Connector) SearchFields() []string { return []string{c.Name, c.Description} }
func (c Connector) CategoryField() string  { return "" }
func (c Connector) StatusField() string    { return c.Status }
func (c Connector) Cells() []string {
	return []string{c.Name, c.Description, c.Status, c.LastSync, strconv.Itoa(c.Documents)}
}

type Upload struct {
	Name     string `json:"name"`
	Size     string `json:"size"`
	Status   string `json:"status"`
	Progress int    `json:"progress"`
}

func (u Upload) SearchFields() []string { return []string{u.Name} }
func (u Upload) CategoryField() string  { return "" }
func (u Upload) StatusField() string    { return u.Status }
func (u Upload) Cells() []string {
	return []string{u.Name, u.Size, u.Status, strconv.Itoa(u.Progress) + "%"}
}

// Stat is a headline number on a dashboard card.
type Stat struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Note  string `json:"note"`
}

type KPI struct {
	Name   string  `json:"name"`
	Value  float64 `json:"value"`
	Target float64 `json:"target"`
	Trend  string  `json:"trend"`
}

// OnTarget reports whether the KPI meets or beats its target.
func (k KPI) OnTarget() bool { return k.Value >= k.Target }

type RolePermissions struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}
