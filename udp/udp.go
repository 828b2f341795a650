// Package udp sends text messages to a UDP endpoint, such as a simulator
// feeding data into the application under test.
package udp

import (
	"context"
	"fmt"
	"net"

	"github.com/golang/glog"
)

// Sender sends messages to Addr, a "host:port" address.
type Sender struct {
	Addr string
}

// Send writes msg as a single datagram. Each call uses its own socket, so a
// Sender can be shared between goroutines.
func (s Sender) Send(ctx context.Context, msg string) error {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "udp", s.Addr)
	if err != nil {
		return fmt.Errorf("dialing %s: %w", s.Addr, err)
	}
	defer conn.Close()
	if _, err := conn.Write([]byte(msg)); err != nil {
		return fmt.Errorf("sending to %s: %w", s.Addr, err)
	}
	glog.V(1).Infof("sent %d bytes to %s", len(msg), s.Addr)
	return nil
}
