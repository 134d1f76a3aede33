// Package lcd drives the second screen of GamePanel-enabled Logitech gaming
// keyboards through the Logitech Gaming LCD/GamePanel SDK.
//
// Create one Session at program start, update it every frame and close it on
// exit:
//
//	s, err := lcd.ConnectMono("My Glorious App")
//	if err != nil {
//		return err
//	}
//	defer s.Close()
//
//	if err := s.SetMonoText(0, "Hello World!"); err != nil {
//		return err
//	}
//	s.Update()
//
// The SDK supports a single applet per process, so only one Session may be
// connected at a time. Errors reported by the SDK are returned as values;
// misuse that can never succeed (wrong frame size, line out of range, an
// operation the session was not connected for) panics.
package lcd
