package catalog

import "metrodms/nav"

var documents = []Document{
	{ID: 1, Name: "Annual_Financial_Report_2024.pdf", Category: "Finance", Size: "2.4 MB", Version: "1.2", LastModified: "2024-12-15", ModifiedBy: "Sarah Johnson", Tags: []string{"Annual", "Finance", "Report"}, Status: "approved"},
	{ID: 2, Name: "Safety_Protocol_Update_v3.docx", Category: "Operations", Size: "856 KB", Version: "3.0", LastModified: "2024-12-14", ModifiedBy: "Mike Chen", Tags: []string{"Safety", "Protocol", "Operations"}, Status: "draft"},
	{ID: 3, Name: "Vendor_Contract_ABC_Corp.pdf", Category: "Legal", Size: "1.8 MB", Version: "2.1", LastModified: "2024-12-13", ModifiedBy: "Alice Kumar", Tags: []string{"Contract", "Vendor", "Legal"}, Status: "approved"},
	{ID: 4, Name: "Employee_Handbook_2025.pdf", Category: "HR", Size: "3.2 MB", Version: "4.0", LastModified: "2024-12-12", ModifiedBy: "David Smith", Tags: []string{"HR", "Handbook", "Policy"}, Status: "review"},
	{ID: 5, Name: "Maintenance_Schedule_Q1_2025.xlsx", Category: "Operations", Size: "645 KB", Version: "1.0", LastModified: "2024-12-11", ModifiedBy: "Emma Wilson", Tags: []string{"Maintenance", "Schedule", "Q1"}, Status: "approved"},
}

var auditTrail = []AuditEntry{
	{ID: 1, Action: "Document Approved", Document: "Annual_Financial_Report_2024.pdf", User: "Sarah Johnson", Timestamp: "2024-12-15 14:30:25", Details: "Document approved after financial review"},
	{ID: 2, Action: "Version Updated", Document: "Safety_Protocol_Update_v3.docx", User: "Mike Chen", Timestamp: "2024-12-14 09:15:43", Details: "Updated safety protocols based on new regulations"},
	{ID: 3, Action: "Document Accessed", Document: "Vendor_Contract_ABC_Corp.pdf", User: "Legal Team", Timestamp: "2024-12-13 16:22:17", Details: "Document accessed for contract review"},
	{ID: 4, Action: "Document Created", Document: "Employee_Handbook_2025.pdf", User: "David Smith", Timestamp: "2024-12-12 11:45:32", Details: "New version of employee handbook created"},
	{ID: 5, Action: "Tags Modified", Document: "Maintenance_Schedule_Q1_2025.xlsx", User: "Emma Wilson", Timestamp: "2024-12-11 13:28:56", Details: "Added Q1 and Schedule tags for better categorization"},
}

var extracted = []ExtractedItem{
	{ID: 1, Document: "Contract_Railway_Maintenance_2024.pdf", Type: "deadline", Content: "Contract renewal due by March 15, 2025", Confidence: 94, Category: "Legal", Priority: "high", Date: "2024-12-15"},
	{ID: 2, Document: "Budget_Allocation_Q4.xlsx", Type: "kpi", Content: "Budget utilization at 87% with ₹2.3M remaining", Confidence: 98, Category: "Finance", Priority: "medium", Date: "2024-12-14"},
	{ID: 3, Document: "Safety_Inspection_Report.pdf", Type: "compliance", Content: "Monthly safety inspection completed - 3 minor issues identified", Confidence: 91, Category: "Operations", Priority: "high", Date: "2024-12-13"},
	{ID: 4, Document: "Vendor_Performance_Nov2024.docx", Type: "insight", Content: "Vendor ABC showing 15% improvement in delivery times", Confidence: 89, Category: "Operations", Priority: "low", Date: "2024-12-12"},
}

var deadlines = []Deadline{
	{ID: 1, Title: "Contract Renewal - ABC Corp", Date: "2025-01-15", DaysLeft: 30, Priority: "high", Category: "Legal", Status: "pending"},
	{ID: 2, Title: "Q4 Financial Report Submission", Date: "2024-12-31", DaysLeft: 16, Priority: "high", Category: "Finance", Status: "in-progress"},
	{ID: 3, Title: "Safety Audit Completion", Date: "2025-02-28", DaysLeft: 74, Priority: "medium", Category: "Operations", Status: "pending"},
	{ID: 4, Title: "Employee Training Certification", Date: "2025-03-15", DaysLeft: 89, Priority: "medium", Category: "HR", Status: "pending"},
}

var payments = []Payment{
	{ID: 1, Vendor: "ABC Construction Ltd", Amount: "₹2,450,000", DueDate: "2024-12-20", Status: "pending", Category: "Infrastructure"},
	{ID: 2, Vendor: "Tech Solutions Inc", Amount: "₹890,000", DueDate: "2024-12-25", Status: "approved", Category: "IT Services"},
	{ID: 3, Vendor: "Safety Equipment Co", Amount: "₹1,200,000", DueDate: "2024-12-30", Status: "pending", Category: "Safety Equipment"},
	{ID: 4, Vendor: "Maintenance Corp", Amount: "₹675,000", DueDate: "2025-01-05", Status: "processing", Category: "Maintenance"},
}

var securityEvents = []SecurityEvent{
	{ID: 1, Type: "authentication", Message: "Multiple failed login attempts detected", Severity: "medium", Timestamp: "2024-12-15 14:23:12", Resolved: true},
	{ID: 2, Type: "access", Message: "Unusual document access pattern detected", Severity: "low", Timestamp: "2024-12-15 13:45:33", Resolved: true},
	{ID: 3, Type: "system", Message: "Security patch applied successfully", Severity: "info", Timestamp: "2024-12-15 12:30:45", Resolved: true},
	{ID: 4, Type: "network", Message: "Firewall rule updated for vendor access", Severity: "info", Timestamp: "2024-12-15 11:15:22", Resolved: true},
}

var connectors = []Connector{
	{ID: "sharepoint", Name: "SharePoint", Status: "connected", LastSync: "2 minutes ago", Documents: 15420, Description: "Microsoft SharePoint document library"},
	{ID: "maximo", Name: "Maximo", Status: "connected", LastSync: "5 minutes ago", Documents: 8934, Description: "IBM Maximo Asset Management"},
	{ID: "erp", Name: "ERP System", Status: "warning", LastSync: "2 hours ago", Documents: 12456, Description: "Enterprise Resource Planning system"},
	{ID: "email", Name: "Email Integration", Status: "disconnected", LastSync: "Never", Documents: 0, Description: "Email attachment processing"},
}

var uploads = []Upload{
	{Name: "Project_Proposal_2024.pdf", Size: "2.4 MB", Status: "processing", Progress: 45},
	{Name: "Safety_Manual_v3.docx", Size: "1.8 MB", Status: "completed", Progress: 100},
	{Name: "Budget_Report_Q4.xlsx", Size: "856 KB", Status: "completed", Progress: 100},
	{Name: "Contract_Amendment.pdf", Size: "1.2 MB", Status: "failed", Progress: 0},
	{Name: "Technical_Specs.pdf", Size: "3.1 MB", Status: "processing", Progress: 78},
}

var kpis = []KPI{
	{Name: "Document Processing Rate", Value: 94.2, Target: 90, Trend: "+2.1%"},
	{Name: "Compliance Score", Value: 87.5, Target: 85, Trend: "+1.8%"},
	{Name: "System Uptime", Value: 99.8, Target: 99.5, Trend: "+0.1%"},
	{Name: "User Satisfaction", Value: 4.6, Target: 4.0, Trend: "+0.3%"},
}

var rolePermissions = []RolePermissions{
	{Role: "Executive", Permissions: []string{
		"View all dashboards and KPIs",
		"Access financial and strategic reports",
		"Approve high-level documents",
		"View system-wide analytics",
		"Manage executive-level settings",
	}},
	{Role: "Staff", Permissions: []string{
		"Process and manage documents",
		"Access audit trails and logs",
		"Monitor system status",
		"Manage document workflows",
		"View operational reports",
	}},
	{Role: "Vendor", Permissions: []string{
		"Upload vendor-specific documents",
		"Track processing status",
		"View approved documents",
		"Access vendor portal only",
		"Download approved contracts",
	}},
}

var dashboardStats = map[nav.DashboardVariant][]Stat{
	nav.ExecutiveDashboard: {
		{Title: "Total Documents", Value: "45,231", Note: "+12% from last month"},
		{Title: "Active Users", Value: "1,234", Note: "+8% from last month"},
		{Title: "Processing Rate", Value: "94.2%", Note: "+2.1% from last month"},
		{Title: "Pending Payments", Value: "₹2.4M", Note: "23 invoices pending"},
	},
	nav.StaffDashboard: {
		{Title: "Documents Processed Today", Value: "1,247", Note: "Target: 1,200"},
		{Title: "Active Alerts", Value: "23", Note: "5 high priority"},
		{Title: "System Status", Value: "99.8%", Note: "All systems operational"},
	},
	nav.VendorDashboard: {
		{Title: "Documents Uploaded", Value: "342", Note: "This month"},
		{Title: "Processing Status", Value: "23", Note: "Pending review"},
		{Title: "Approved Documents", Value: "319", Note: "93.3% approval rate"},
	},
}
