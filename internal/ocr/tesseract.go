package ocr

import "os/exec"

// ExtractText shells out to tesseract. OCR stays an external collaborator:
// the binary, not this process, owns image decoding and recognition.
func ExtractText(filePath string) (string, error) {
	cmd := exec.Command("tesseract", filePath, "stdout")
	out, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(out), nil
}
