package cmd

import (
	"bufio"
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

func readHexInput() (string, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) {
		return strings.TrimSpace(string(readDataTTY())), nil
	}
	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func readDataTTY() []byte {
	fmt.Println("Paste or type the hex you would like to decode below.")
	fmt.Println("When you are finished, press Ctrl+D.")

	var buf bytes.Buffer
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		buf.WriteString(scanner.Text())
	}

	return buf.Bytes()
}
