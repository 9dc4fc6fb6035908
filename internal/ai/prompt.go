package ai

import (
	"fmt"
	"strings"

	"github.com/chitieu-app/chitieu/internal/model"
	"github.com/shopspring/decimal"
)

// parsePrompt builds the fixed instructional prompt for transaction
// extraction. It pins the target field names, the closed category set,
// sign normalization and the date format, and forbids commentary so the
// response stays machine-parseable.
func parsePrompt(csvText string) string {
	categories := `"` + strings.Join(model.ExpenseCategories, `", "`) + `"`

	return fmt.Sprintf(`Bạn là một trợ lý kế toán chuyên nghiệp. Tôi có một đoạn dữ liệu giao dịch dưới dạng CSV thô.
Nhiệm vụ của bạn:
1. Trích xuất: Người giao dịch, Nội dung khoản tiền, Khoản tiền, Phân loại danh mục, Ngày Giao dịch, Loại tương ứng với các cột user,content,amount,category,date,type
2. Phân loại: Tự động chọn danh mục cho mỗi khoản chi dựa trên dữ liệu đọc (chỉ chọn trong: %s).
3. Chú ý: Cột loại chỉ nhận 2 giá trị là "%s" và "%s"
4. Định dạng: Trả về kết quả dưới dạng JSON List.
Lưu ý:
- Nếu số tiền là số âm, hãy chuyển thành số dương.
- Định dạng ngày trả về: YYYY-MM-DD.
- Không giải thích thêm, chỉ trả về JSON.
Dữ liệu CSV:
%s`, categories, model.AITypeIncome, model.AITypeExpense, csvText)
}

// wordsPrompt asks for the Vietnamese reading of a number, nothing else.
func wordsPrompt(amount decimal.Decimal) string {
	return fmt.Sprintf(`Bạn là một công cụ chuyển đổi số liệu thành văn bản tiếng Việt chuẩn. Nhiệm vụ của bạn là nhận vào một chuỗi số và trả về cách đọc của số đó bằng tiếng Việt.
Quy tắc:
- Chỉ trả về văn bản cách đọc số, không được thêm bất kỳ lời dẫn hay giải thích nào.
- Đọc đúng chuẩn ngữ pháp tiếng Việt (ví dụ: dùng "lẻ" hoặc "linh" cho số 0 ở giữa, "mốt" cho số 1 tận cùng hàng chục, "tư" cho số 4).
- Nếu số quá lớn, hãy đọc theo lớp (tỷ, triệu, nghìn).
Đây là số bạn cần đọc:
%s`, amount.String())
}
