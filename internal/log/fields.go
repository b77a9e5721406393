package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldQuery      = "query"
	FieldBackend    = "backend"
	FieldCustomerID = "customer_id"
	FieldProductID  = "product_id"
	FieldSortBy     = "sort_by"
	FieldNameFilter = "name_filter"
	FieldDateFrom   = "from"
	FieldDateTo     = "to"
	FieldRecords    = "records"
)

// Components defines standard component names
const (
	ComponentApp        = "app"
	ComponentHTTP       = "http"
	ComponentQuery      = "query"
	ComponentDataSource = "datasource"
	ComponentSnapshot   = "snapshot"
	ComponentStorage    = "storage"
	ComponentAMQP       = "amqp"
	ComponentWorker     = "worker"
	ComponentSeed       = "seed"
	ComponentBackend    = "backend"
)

// Operations defines standard operation names
const (
	OpFrequency  = "purchase_frequency"
	OpSummaries  = "customer_summaries"
	OpDetails    = "customer_purchase_details"
	OpFetch      = "fetch"
	OpRefresh    = "refresh"
	OpInvalidate = "invalidate"
	OpSeed       = "seed"
	OpStartup    = "startup"
	OpShutdown   = "shutdown"
)
