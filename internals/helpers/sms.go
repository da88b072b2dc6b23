// file: internals/helpers/sms.go
package helper

import (
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"lembagaku_backend/internals/configs"
)

var smsClient = &http.Client{Timeout: 10 * time.Second}

// SendSMS kirim pesan lewat gateway SMS eksternal.
// Gagal kirim TIDAK boleh menggagalkan operasi bisnis pemanggil —
// cukup dicatat di log.
func SendSMS(toNumber, message string) error {
	if configs.SMSGatewayURL == "" {
		log.Printf("[INFO] SMS skip (gateway belum dikonfigurasi) ke %s", toNumber)
		return nil
	}

	form := url.Values{}
	form.Set("to", toNumber)
	form.Set("message", message)
	form.Set("api_key", configs.SMSAPIKey)

	resp, err := smsClient.PostForm(configs.SMSGatewayURL, form)
	if err != nil {
		log.Printf("[ERROR] SMS gagal terkirim ke %s: %v", toNumber, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		log.Printf("[ERROR] SMS gateway balas status %d untuk %s", resp.StatusCode, toNumber)
		return nil
	}

	log.Printf("[SUCCESS] SMS terkirim ke %s", toNumber)
	return nil
}

// SendSMSAsync: fire-and-forget, dipakai controller supaya response tidak
// menunggu gateway.
func SendSMSAsync(toNumber, message string) {
	toNumber = strings.TrimSpace(toNumber)
	if toNumber == "" {
		return
	}
	go func() {
		_ = SendSMS(toNumber, message)
	}()
}
