package services

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"hrms/errors"
)

// Dịch vụ render hóa đơn PDF chạy riêng, gọi qua HTTP.
// INVOICE_RENDER_URL trỏ tới endpoint render, ví dụ https://render.internal/invoice

var pdfHTTPClient = &http.Client{Timeout: 30 * time.Second}

func fetchInvoicePDF(invoiceCode string, force bool) ([]byte, error) {
	baseURL := os.Getenv("INVOICE_RENDER_URL")
	if baseURL == "" {
		return nil, errors.NewAppError(errors.ErrCodeNetwork, "INVOICE_RENDER_URL chưa được cấu hình", nil)
	}

	params := url.Values{}
	params.Set("code", invoiceCode)
	if force {
		params.Set("force", "1")
	}

	resp, err := pdfHTTPClient.Get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeNetwork, "không gọi được dịch vụ render hóa đơn", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewAppError(errors.ErrCodeNetwork,
			fmt.Sprintf("dịch vụ render trả về status %d", resp.StatusCode), nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeNetwork, "không đọc được nội dung PDF", err)
	}
	return data, nil
}

// DownloadInvoicePDF tải PDF hóa đơn từ dịch vụ render. File rỗng coi như
// render hỏng tạm thời: thử lại đúng một lần với cờ force để render lại,
// vẫn rỗng thì trả lỗi cho người dùng tự bấm thử lại.
func DownloadInvoicePDF(invoiceCode string) ([]byte, error) {
	data, err := fetchInvoicePDF(invoiceCode, false)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		data, err = fetchInvoicePDF(invoiceCode, true)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			return nil, errors.NewAppError(errors.ErrCodeNetwork, "dịch vụ render trả về file rỗng", nil)
		}
	}

	return data, nil
}
