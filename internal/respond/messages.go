package respond

// Fixed endpoint messages, kept in one place so handlers and tests agree.
const (
	MsgValidationError = "Validation error!"
	MsgNoDataFound     = "No data found!"
	MsgDataFound       = "Data found successfully!"
	MsgInternalError   = "Something went wrong, please try again later!"

	MsgNoToken      = "Authorization failed, no token provided!"
	MsgInvalidToken = "Authorization failed, token is invalid!"
	MsgAdminOnly    = "Authorization failed, admin access required!"

	MsgItemSaved      = "Item saved successfully!"
	MsgItemUpdated    = "Item updated successfully!"
	MsgItemDeleted    = "Item deleted successfully!"
	MsgItemNotSaved   = "Item could not be saved!"
	MsgItemNotUpdated = "Item could not be updated!"
	MsgItemNotDeleted = "Item could not be deleted!"

	MsgOrderSaved      = "Order saved successfully!"
	MsgOrderUpdated    = "Order updated successfully!"
	MsgOrderNotUpdated = "Order could not be updated!"

	MsgRegistered   = "Registered successfully!"
	MsgLoggedIn     = "Logged in successfully!"
	MsgUserExists   = "User already exists!"
	MsgBadLogin     = "Invalid username or password!"
)
