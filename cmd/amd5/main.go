// Command amd5 reads standard input to end of stream and prints its MD5 digest
// as 32 lowercase hex characters.
package main

import (
	"fmt"
	"io"
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/storacha/go-md5auth/core/hash/hexdigest"
	"github.com/storacha/go-md5auth/core/hash/md5"
)

var log = logging.Logger("md5auth/amd5")

const usage = "amd5 - reads from stdin to calculate a md5-hash.\n"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

// run digests stdin. Any argument, including "--" and "-h", only prints the
// usage line.
func run(args []string, stdin io.Reader, stdout io.Writer) int {
	if len(args) > 0 {
		fmt.Fprint(stdout, usage)
		return 0
	}

	c := md5.New()
	if _, err := io.Copy(c, stdin); err != nil {
		log.Errorf("reading stdin: %s", err)
		return 1
	}
	d, err := c.Finalize()
	if err != nil {
		log.Errorf("finalizing digest: %s", err)
		return 1
	}

	fmt.Fprintln(stdout, hexdigest.Encode(d))
	return 0
}
