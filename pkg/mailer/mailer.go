package mailer

import (
	"crypto/tls"
	"fmt"
	"io"
	"strconv"

	"Sistem-Payroll-Karyawan/config"

	"gopkg.in/gomail.v2"
)

// Mailer mengirim notifikasi email lewat SMTP. Kalau SMTP_HOST kosong,
// Mailer jalan dalam mode nonaktif dan semua pengiriman dilewati.
type Mailer struct {
	dialer *gomail.Dialer
	sender string
}

func New(cfg *config.AppConfig) *Mailer {
	m := &Mailer{sender: cfg.MailSender}

	if cfg.SMTPHost == "" {
		return m
	}

	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 587
	}

	m.dialer = gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)
	m.dialer.TLSConfig = &tls.Config{InsecureSkipVerify: true}
	return m
}

func (m *Mailer) Enabled() bool {
	return m.dialer != nil
}

// SendLeaveDecision memberi tahu karyawan hasil pengajuan cutinya.
func (m *Mailer) SendLeaveDecision(to, name, status, startDate, endDate string) error {
	if !m.Enabled() {
		return nil
	}

	statusText := "disetujui"
	if status == "rejected" {
		statusText = "ditolak"
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Pengajuan cuti %s s/d %s %s", startDate, endDate, statusText))
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Halo %s,</p><p>Pengajuan cuti Anda untuk tanggal <b>%s</b> sampai <b>%s</b> telah <b>%s</b>.</p>",
		name, startDate, endDate, statusText,
	))

	return m.dialer.DialAndSend(msg)
}

// SendPayslip mengirim slip gaji final sebagai lampiran PDF.
func (m *Mailer) SendPayslip(to, name, period string, pdf []byte) error {
	if !m.Enabled() {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Slip gaji periode %s", period))
	msg.SetBody("text/html", fmt.Sprintf(
		"<p>Halo %s,</p><p>Slip gaji Anda untuk periode <b>%s</b> terlampir.</p>",
		name, period,
	))
	msg.Attach(fmt.Sprintf("slip-gaji-%s.pdf", period), gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(pdf)
		return err
	}))

	return m.dialer.DialAndSend(msg)
}
