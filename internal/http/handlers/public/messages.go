package public

// User-facing messages, in Vietnamese.
const (
	msgBadRequest        = "Yêu cầu không hợp lệ"
	msgInternal          = "Hệ thống đang bận, vui lòng thử lại sau"
	msgUnauthorized      = "Vui lòng đăng nhập"
	msgUserIDInvalid     = "Phiên đăng nhập không hợp lệ"
	msgTooManyRequests   = "Thao tác quá nhanh, vui lòng thử lại sau"
	msgCartSessionFailed = "Không xác định được phiên giỏ hàng"

	msgProductNotFound  = "Không tìm thấy sản phẩm"
	msgProductInactive  = "Sản phẩm đã ngừng kinh doanh"
	msgCategoryNotFound = "Không tìm thấy danh mục"

	msgCartEmpty        = "Giỏ hàng trống"
	msgCartItemNotFound = "Sản phẩm không có trong giỏ hàng"
	msgInvalidQuantity  = "Số lượng không hợp lệ"

	msgCustomerInfoRequired    = "Vui lòng điền đầy đủ thông tin người nhận"
	msgShippingAddressRequired = "Vui lòng nhập địa chỉ giao hàng"
	msgInvalidShippingMethod   = "Phương thức giao hàng không hợp lệ"
	msgInvalidPaymentMethod    = "Phương thức thanh toán không hợp lệ"
	msgCheckoutInFlight        = "Đơn hàng đang được xử lý, vui lòng chờ trong giây lát"
	msgCheckoutFailed          = "Đặt hàng thất bại, vui lòng thử lại"

	msgOrderNotFound      = "Không tìm thấy đơn hàng"
	msgOrderNotCancelable = "Đơn hàng không thể hủy ở trạng thái hiện tại"

	msgInvalidEmail       = "Địa chỉ email không hợp lệ"
	msgEmailExists        = "Email đã được đăng ký"
	msgInvalidCredentials = "Email hoặc mật khẩu không đúng"
	msgUserDisabled       = "Tài khoản đã bị khóa"
	msgPasswordTooShort   = "Mật khẩu phải có ít nhất 8 ký tự"
	msgRegisterFailed     = "Đăng ký thất bại, vui lòng thử lại"
	msgLoginFailed        = "Đăng nhập thất bại, vui lòng thử lại"

	msgCaptchaRequired    = "Vui lòng nhập mã xác nhận"
	msgCaptchaInvalid     = "Mã xác nhận không đúng"
	msgCaptchaUnavailable = "Mã xác nhận hiện không khả dụng"
)
