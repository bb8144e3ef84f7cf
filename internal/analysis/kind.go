package analysis

import "fmt"

// Kind is the closed set of analysis types. Each kind carries its fixed,
// parameterless instruction text; the projection is appended verbatim.
type Kind int

const (
	KindSummary Kind = iota
	KindDetailed
	KindTrends
)

// Kinds lists every analysis kind in menu order.
var Kinds = []Kind{KindSummary, KindDetailed, KindTrends}

// ParseKind maps a CLI argument to a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "summary":
		return KindSummary, nil
	case "detailed":
		return KindDetailed, nil
	case "trends":
		return KindTrends, nil
	default:
		return KindSummary, fmt.Errorf("unknown analysis type %q (expected summary, detailed or trends)", s)
	}
}

func (k Kind) String() string {
	switch k {
	case KindDetailed:
		return "detailed"
	case KindTrends:
		return "trends"
	default:
		return "summary"
	}
}

// Title returns the human-readable heading used in report files.
func (k Kind) Title() string {
	switch k {
	case KindDetailed:
		return "Detailed"
	case KindTrends:
		return "Trends"
	default:
		return "Summary"
	}
}

// Instruction returns the prompt body for this kind.
func (k Kind) Instruction() string {
	switch k {
	case KindDetailed:
		return detailedInstruction
	case KindTrends:
		return trendsInstruction
	default:
		return summaryInstruction
	}
}

const summaryInstruction = `
Please analyze these Jira tickets and provide:

1. **Executive Summary** (2-3 sentences about the overall state)
2. **Key Statistics** (count by status, priority, type)
3. **Main Themes** (what are the common issues/topics)
4. **Priority Issues** (highlight high-priority or urgent items)
5. **Recommendations** (actionable insights for the team/manager)

Keep the analysis concise and manager-friendly. Focus on actionable insights.

Ticket Data:
`

const detailedInstruction = `
You are a senior analyst reviewing 600 Level 2 tech support Jira tickets. Your goal is to extract operational and team performance insights. Provide specific, data-driven answers. Be concise, but insightful. Avoid generic statements.

Analyze the following:

1. 🔁 **Recurring Issues & Technical Trends**
   - Cluster similar tickets by keywords or symptoms (e.g. "timeout", "duplicate entry", "3DS failure")
   - Give counts per cluster and example ticket IDs
   - Identify what systems/modules cause the most trouble

2. 👤 **Most Valuable Personnel**
   - Who resolves the most tickets?
   - Who handles the most complex tickets? (longest descriptions, critical priority)
   - Who closes tickets fastest (median resolution time)?
   - Who gets stuck most often? (tickets blocked or not updated >7 days)

3. 🧱 **Bottlenecks & Risks**
   - Where are tickets getting stuck? (statuses, handoffs, specific assignees)
   - Are there neglected tickets (e.g., open for >14 days)?
   - Are high-priority tickets resolved faster than low-priority ones?

4. 🗓️ **Time-Based Trends**
   - Ticket volume by week/month
   - Resolution time trends: is it improving?
   - Peaks in ticket creation or slowdowns in resolution — identify and explain

5. 📈 **Process and Workflow Patterns**
   - Average number of status transitions per ticket
   - Any patterns in ticket reopenings?
   - Any assignee-specific patterns? (e.g. "Assignee X always gets API errors")

6. 🚨 **Actionable Recommendations**
   - Suggest team/process improvements
   - Propose which recurring issues should be fixed at the root
   - Identify where automation could reduce ticket load

Be specific. Use bullet points and tables where appropriate. Include counts, percentages, and ticket IDs. This analysis is for a support team manager who wants to improve efficiency, identify top performers, and reduce recurring problems.

Ticket Data:
`

const trendsInstruction = `
Analyze these Jira tickets for detailed trends and actionable insights. Provide specific data points, numbers, and examples where possible:

## 1. **TEMPORAL ANALYSIS**
- **Ticket Volume by Time**: Count tickets created per day/week/month. Identify peak periods and quiet times.
- **Time-to-Resolution**: Calculate average time from creation to resolution for different ticket types and priorities.
- **Age Analysis**: Identify tickets that have been open for unusually long periods.

## 2. **WORKFLOW & STATUS ANALYSIS**
- **Status Distribution**: Current count of tickets in each status (To Do, In Progress, Pending, Blocked, Done, etc.)
- **Stuck Tickets Analysis**: 
  - List tickets in "Pending" status for >X days with specific ticket IDs
  - List tickets in "Blocked" status for >X days with specific ticket IDs
  - Identify which tickets haven't been updated recently
- **Status Transition Patterns**: How tickets typically flow through statuses

## 3. **WORKLOAD & ASSIGNEE ANALYSIS**
- **Tickets per Assignee**: Count and percentage breakdown by team member
- **Assignee Performance Patterns**: 
  - Who has the most open tickets?
  - Who resolves tickets fastest/slowest?
  - Which assignees have tickets stuck in specific statuses?
- **Workload Balance**: Identify overloaded vs underutilized team members

## 4. **PROBLEM PATTERN ANALYSIS**
- **Similar Issue Clustering**: Group tickets with very similar titles, descriptions, or error patterns
  - Example: "Payment processing errors" (count: X tickets)
  - Example: "API timeout issues" (count: X tickets)  
  - Example: "Database connection problems" (count: X tickets)
- **Recurring Keywords**: Most frequent words/phrases in ticket descriptions
- **Error Pattern Detection**: Common error codes, system names, or technical issues

## 5. **DEPENDENCY & CORRELATION ANALYSIS**
- **Assignee-Specific Patterns**: 
  - Does Assignee X always get certain types of tickets?
  - Which assignees have recurring similar problems?
  - Are some team members specialists in specific areas?
- **Subject-Matter Dependencies**: 
  - Which topics/systems generate the most tickets?
  - Are certain subjects always assigned to the same people?
  - What are the most problematic systems/features?

## 6. **PRIORITY & IMPACT ANALYSIS**
- **Priority Distribution**: Breakdown by High/Medium/Low priority
- **Priority vs Time-to-Resolution**: Do high-priority tickets actually get resolved faster?
- **Escalation Patterns**: Which types of tickets tend to get escalated?

## 7. **ACTIONABLE RECOMMENDATIONS**
Based on the patterns found, provide specific recommendations:
- Which processes need improvement?
- Where are the bottlenecks?
- What training might be needed?
- How to better distribute workload?
- Which recurring issues need permanent fixes?

**IMPORTANT**: For each insight, provide:
- Specific numbers and percentages
- Actual ticket IDs as examples where relevant
- Clear actionable recommendations
- Potential root causes for identified problems

Ticket Data:
`
