package canvas

// XPath selectors against the Canvas UI. These follow the vendor markup and
// are the first thing to check when a run stops finding elements.
const (
	selUsername    = "//*[@id='pseudonym_session_unique_id']"
	selPassword    = "//*[@id='pseudonym_session_password']"
	selLoginButton = "//input[@value='Log In']"

	selProceed     = "//a[normalize-space(.)='Proceed']"
	selStopActing  = "//a[normalize-space(.)='Stop acting as user']"
	selComingUp    = "//*[contains(concat(' ', normalize-space(@class), ' '), ' events_list ') and contains(concat(' ', normalize-space(@class), ' '), ' coming_up ')]"
	selMoreLinks   = "//ul//li//a[contains(concat(' ', @class, ' '), ' more_link ')]"
	selMoreButton  = "//a[contains(text(), 'more..')]"
	selTodoBadge   = "//div[contains(concat(' ', @class, ' '), ' todo-badge ')]/span"
	selTodoLinks   = "//li[contains(concat(' ', @class, ' '), ' todo ')]//a"
	todoListMarker = "todo-list-header"

	selSubmissionSelect    = "//*[@id='submission_to_view']"
	selMultipleSubmissions = "//*[@id='multiple_submissions']"

	selStudentToggle      = "//i[contains(concat(' ', @class, ' '), ' icon-mini-arrow-down ')]"
	selPendingStudent     = "//li[contains(concat(' ', @class, ' '), ' not_graded ')]"
	selPendingStudentName = selPendingStudent + "//*[contains(concat(' ', @class, ' '), ' ui-selectmenu-item-header ')]"
	selCurrentStudent     = "//span[contains(concat(' ', @class, ' '), ' ui-selectmenu-status ')]//*[contains(concat(' ', @class, ' '), ' ui-selectmenu-item-header ')]"

	dashboardTitle = "Dashboard"
)
