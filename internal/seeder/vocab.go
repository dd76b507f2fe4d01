package seeder

// Vocabularies the faker samples from. Values mirror what a small CRM data
// set actually looks like; realism beyond that is a non-goal.

var industries = []string{
	"Technology", "Healthcare", "Finance", "Manufacturing", "Retail",
	"Education", "Real Estate", "Consulting", "Marketing", "Legal",
	"Energy", "Transportation", "Hospitality", "Construction", "Agriculture",
	"Telecommunications", "Media", "Insurance", "Pharmaceutical", "Automotive",
}

var departments = []string{
	"Executive", "Sales", "Marketing", "Engineering", "Finance", "HR", "Operations",
}

var jobTitles = map[string][]string{
	"Executive":   {"CEO", "CTO", "CFO", "COO", "VP of Operations", "President", "Managing Director"},
	"Sales":       {"Sales Director", "Sales Manager", "Account Executive", "Sales Representative", "Business Development Manager"},
	"Marketing":   {"Marketing Director", "Marketing Manager", "Brand Manager", "Digital Marketing Specialist", "Content Manager"},
	"Engineering": {"Engineering Manager", "Software Engineer", "Senior Developer", "Tech Lead", "DevOps Engineer"},
	"Finance":     {"Finance Director", "Controller", "Financial Analyst", "Accountant", "Treasurer"},
	"HR":          {"HR Director", "HR Manager", "Recruiter", "Talent Acquisition Specialist", "HR Generalist"},
	"Operations":  {"Operations Manager", "Project Manager", "Supply Chain Manager", "Logistics Coordinator"},
}

// dealStages pairs each pipeline stage with its base win probability. Order
// matters only for deterministic sampling under a fixed seed.
var dealStages = []struct {
	Name        string
	Probability int
}{
	{"prospecting", 10},
	{"qualification", 25},
	{"proposal", 50},
	{"negotiation", 75},
	{"closed_won", 100},
	{"closed_lost", 0},
}

var productCategories = []string{
	"Software", "Hardware", "Services", "Support", "Training",
	"Consulting", "Subscription", "License", "Integration", "Custom Development",
}

var productPrefixes = []string{"Pro", "Enterprise", "Basic", "Premium", "Ultimate", "Starter", "Business", "Team"}

var productTypes = []string{"Suite", "Platform", "Solution", "Package", "Service", "Module", "Add-on", "License"}

var activityTypes = []string{"call", "email", "meeting", "demo", "follow_up"}

var activitySubjects = map[string][]string{
	"call":      {"Initial discovery call", "Follow-up call", "Product discussion", "Pricing call", "Check-in call", "Support call"},
	"email":     {"Introduction email", "Proposal sent", "Follow-up email", "Meeting confirmation", "Thank you email", "Contract sent"},
	"meeting":   {"Product demo", "Strategy meeting", "Kickoff meeting", "Quarterly review", "Executive presentation", "Technical deep-dive"},
	"demo":      {"Product walkthrough", "Feature demonstration", "Technical demo", "POC presentation", "Solution overview"},
	"follow_up": {"Post-meeting follow-up", "Proposal follow-up", "Contract follow-up", "Decision check-in", "Next steps discussion"},
}

var taskPriorities = []string{"low", "medium", "high", "urgent"}

var taskStatuses = []string{"pending", "in_progress", "completed", "cancelled"}

// taskStatusWeights biases status sampling toward completed and pending,
// matching a lived-in pipeline.
var taskStatusWeights = []int{30, 20, 40, 10}

var taskTemplates = []struct {
	Title       string
	Description string
}{
	{"Send proposal to client", "Prepare and send detailed proposal with pricing"},
	{"Schedule follow-up call", "Arrange call to discuss next steps"},
	{"Prepare demo environment", "Set up demo instance with sample data"},
	{"Review contract terms", "Legal review of contract amendments"},
	{"Send pricing breakdown", "Detailed cost analysis for customer"},
	{"Update CRM records", "Ensure all contact info is current"},
	{"Prepare executive summary", "Summary document for leadership review"},
	{"Technical requirements review", "Validate technical specifications"},
	{"Coordinate with implementation team", "Align on delivery timeline"},
	{"Follow up on outstanding questions", "Address customer concerns"},
}

var dealSources = []string{
	"Website", "Referral", "Cold Call", "Trade Show", "Social Media",
	"Email Campaign", "Partner", "Advertisement", "Inbound", "Outbound",
}

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
	"Linda", "David", "Elizabeth", "William", "Barbara", "Richard", "Susan",
	"Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen", "Daniel",
	"Nancy", "Matthew", "Lisa", "Anthony", "Margaret", "Mark", "Sandra",
	"Steven", "Ashley", "Paul", "Kimberly", "Andrew", "Emily", "Joshua",
	"Donna", "Kevin", "Michelle", "Brian", "Carol",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Martin",
	"Lee", "Perez", "Thompson", "White", "Harris", "Sanchez", "Clark",
	"Ramirez", "Lewis", "Robinson", "Walker", "Young", "Allen", "King",
}

var companyStems = []string{
	"Acme", "Apex", "Vertex", "Summit", "Pinnacle", "Horizon", "Cascade",
	"Meridian", "Atlas", "Nimbus", "Quantum", "Stellar", "Fusion", "Vector",
	"Catalyst", "Keystone", "Beacon", "Lattice", "Orbit", "Spectrum",
}

var companySuffixes = []string{
	"Inc", "LLC", "Group", "Holdings", "Industries", "Solutions",
	"Systems", "Partners", "Labs", "Technologies",
}

var emailDomains = []string{
	"example.com", "example.org", "example.net", "mailbox.test",
	"corporate.test", "business.test",
}

var streetNames = []string{
	"Main", "Oak", "Maple", "Cedar", "Pine", "Elm", "Washington",
	"Lake", "Hill", "Park", "River", "Sunset", "Highland", "Franklin",
}

var streetTypes = []string{"Street", "Avenue", "Boulevard", "Drive", "Lane", "Road", "Way"}

var cities = []string{
	"Springfield", "Riverside", "Fairview", "Franklin", "Clinton",
	"Greenville", "Bristol", "Salem", "Madison", "Georgetown",
	"Arlington", "Ashland", "Burlington", "Clayton", "Dover",
}

var stateAbbrs = []string{
	"AL", "AZ", "CA", "CO", "CT", "FL", "GA", "IL", "IN", "MA",
	"MD", "MI", "MN", "MO", "NC", "NJ", "NY", "OH", "OR", "PA",
	"TN", "TX", "UT", "VA", "WA", "WI",
}

// buzzVerbs/buzzAdjectives/buzzNouns combine into deal titles and note
// filler, the way marketing copy reads.
var buzzVerbs = []string{
	"Streamline", "Optimize", "Accelerate", "Integrate", "Transform",
	"Scale", "Enable", "Unify", "Automate", "Modernize",
}

var buzzAdjectives = []string{
	"Scalable", "End-To-End", "Cross-Platform", "Enterprise", "Cloud-Native",
	"Data-Driven", "Next-Generation", "Turnkey", "Mission-Critical", "Seamless",
}

var buzzNouns = []string{
	"Workflows", "Infrastructure", "Analytics", "Platforms", "Channels",
	"Deliverables", "Synergies", "Pipelines", "Solutions", "Ecosystems",
}

var sentenceStock = []string{
	"The rollout is planned in two phases with a pilot group first.",
	"Initial feedback from the evaluation team has been positive.",
	"Licensing terms were reviewed by procurement last quarter.",
	"The integration touches billing, reporting, and the customer portal.",
	"Support coverage during the migration window is still open.",
	"A sandbox environment is available for technical validation.",
	"Renewal timing lines up with their fiscal year end.",
	"The current vendor contract expires within six months.",
	"Stakeholders asked for a detailed security questionnaire.",
	"Budget sign-off requires a summary for the finance committee.",
}

var noteTemplates = []string{
	"Spoke with %s about their current challenges. They mentioned %s.",
	"Key decision maker is %s. Budget approval needed from %s.",
	"Follow up required regarding %s. Best time to call is %s.",
	"Competitor %s is also in discussions. We need to highlight %s.",
	"Customer expressed interest in %s. Schedule demo for next week.",
	"Contract negotiations ongoing. Legal review expected by %s.",
	"Technical requirements gathered: %s.",
	"Budget: %s. Timeline: %s.",
}

var decisionRoles = []string{"CEO", "CTO", "CFO", "VP", "Director"}

var budgetDepartments = []string{"Finance", "IT", "Operations", "Executive"}

var callWindows = []string{"morning", "afternoon", "after 3pm"}
